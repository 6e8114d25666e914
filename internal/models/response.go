package models

import "time"

// APIResponse is the JSON envelope for all non-streaming endpoints.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ConvertedImage is the payload of a successful single conversion.
type ConvertedImage struct {
	Filename      string `json:"filename"`
	OriginalSize  int64  `json:"original_size"`
	ConvertedSize int64  `json:"converted_size"`
	Savings       int    `json:"savings"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Format        Format `json:"format"`
	Base64        string `json:"base64"`
}

// ConversionFailure is the error-shaped JSON body for a failed conversion.
type ConversionFailure struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// HealthCheck reports service liveness.
type HealthCheck struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}
