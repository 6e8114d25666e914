package handlers

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"image-convert/internal/models"
	"image-convert/internal/services/processor"
	"image-convert/pkg/utils"
)

// === REQUEST PARSING ===

func rawOptionsFromForm(c *gin.Context) processor.RawOptions {
	return processor.RawOptions{
		Format:            c.PostForm("format"),
		Quality:           c.PostForm("quality"),
		MaxWidth:          c.PostForm("maxWidth"),
		MaxHeight:         c.PostForm("maxHeight"),
		KeepMetadata:      c.PostForm("keepMetadata"),
		WatermarkText:     c.PostForm("watermarkText"),
		WatermarkPosition: c.PostForm("watermarkPosition"),
		WatermarkColor:    c.PostForm("watermarkColor"),
	}
}

func (h *ConvertHandler) parseMultipartFiles(c *gin.Context) ([]*multipart.FileHeader, error) {
	if err := c.Request.ParseMultipartForm(h.config.Upload.MaxFileSize); err != nil {
		return nil, fmt.Errorf("failed to parse form data: %v", err)
	}

	files := c.Request.MultipartForm.File[imagesParamKey]
	if len(files) == 0 {
		return nil, fmt.Errorf("no files uploaded")
	}
	if len(files) > h.config.Upload.MaxBatchFiles {
		return nil, fmt.Errorf("too many files: %d (limit %d)", len(files), h.config.Upload.MaxBatchFiles)
	}

	return files, nil
}

// === FILE OPERATIONS ===

func (h *ConvertHandler) readUpload(file multipart.File, header *multipart.FileHeader) ([]byte, error) {
	if header.Size > h.config.Upload.MaxFileSize {
		return nil, fmt.Errorf("file %q exceeds the %d byte limit", header.Filename, h.config.Upload.MaxFileSize)
	}
	if !utils.IsAllowedSource(header.Filename, h.config.Upload.AllowedExts) {
		return nil, fmt.Errorf("file type of %q is not supported", header.Filename)
	}

	data, err := io.ReadAll(io.LimitReader(file, h.config.Upload.MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %v", err)
	}
	if int64(len(data)) > h.config.Upload.MaxFileSize {
		return nil, fmt.Errorf("file %q exceeds the %d byte limit", header.Filename, h.config.Upload.MaxFileSize)
	}
	if !utils.IsImageContentType(data) {
		return nil, fmt.Errorf("file %q does not look like an image", header.Filename)
	}

	return data, nil
}

// convertOne opens, reads and converts a single batch member, folding read
// failures into the same error-shaped result as pipeline failures.
func (h *ConvertHandler) convertOne(c *gin.Context, fh *multipart.FileHeader, opts processor.Options) *models.ConversionResult {
	file, err := fh.Open()
	if err != nil {
		return &models.ConversionResult{
			Filename: fh.Filename,
			Err:      fmt.Errorf("%w: %v", processor.ErrInvalidInput, err),
		}
	}
	defer file.Close()

	data, err := h.readUpload(file, fh)
	if err != nil {
		return &models.ConversionResult{
			Filename: fh.Filename,
			Err:      fmt.Errorf("%w: %v", processor.ErrInvalidInput, err),
		}
	}

	return h.processor.Convert(c.Request.Context(), fh.Filename, data, opts)
}

// === RESPONSE HANDLING ===

func (h *ConvertHandler) respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.APIResponse{
		Success: false,
		Error:   message,
	})
}

func encodePayload(result *models.ConversionResult) *models.ConvertedImage {
	return &models.ConvertedImage{
		Filename:      result.Filename,
		OriginalSize:  result.OriginalSize,
		ConvertedSize: result.ConvertedSize,
		Savings:       result.Savings,
		Width:         result.Width,
		Height:        result.Height,
		Format:        result.Format,
		Base64:        base64.StdEncoding.EncodeToString(result.Data),
	}
}

// === CACHE OPERATIONS ===

func (h *ConvertHandler) cacheKey(data []byte, opts processor.Options) string {
	if h.cache == nil {
		return ""
	}
	return h.cache.Key(data, opts)
}

func (h *ConvertHandler) cacheGet(c *gin.Context, key string) *models.ConvertedImage {
	if h.cache == nil || key == "" {
		return nil
	}
	payload, err := h.cache.Get(c.Request.Context(), key)
	if err != nil {
		h.logger.Warn("cache lookup failed", zap.Error(err))
		return nil
	}
	if payload != nil {
		h.logger.Info("cache hit", zap.String("cache_key", key))
	}
	return payload
}

func (h *ConvertHandler) cacheSet(c *gin.Context, key string, payload *models.ConvertedImage) {
	if h.cache == nil || key == "" {
		return
	}
	if err := h.cache.Set(c.Request.Context(), key, payload); err != nil {
		h.logger.Warn("cache store failed", zap.String("cache_key", key), zap.Error(err))
	}
}
