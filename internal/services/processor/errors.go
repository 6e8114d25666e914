package processor

import "errors"

// Error classes for the conversion pipeline. Handlers map these onto HTTP
// statuses; bulk conversion treats everything except ErrStream as per-file.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnsupportedFormat = errors.New("unsupported target format")
	ErrDecode            = errors.New("image decode failed")
	ErrEncode            = errors.New("image encode failed")
	ErrStream            = errors.New("output stream failed")
)
