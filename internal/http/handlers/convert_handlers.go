package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"image-convert/internal/config"
	"image-convert/internal/models"
	"image-convert/internal/services/archive"
	"image-convert/internal/services/processor"
	"image-convert/internal/services/storage"
)

const (
	imageParamKey  = "image"
	imagesParamKey = "images"
)

type ConvertHandler struct {
	processor *processor.Processor
	cache     *storage.Cache
	logger    *zap.Logger
	config    *config.Config
}

// NewConvertHandler wires the conversion endpoints. cache may be nil when
// redis is not configured.
func NewConvertHandler(
	processor *processor.Processor,
	cache *storage.Cache,
	logger *zap.Logger,
	config *config.Config,
) *ConvertHandler {
	return &ConvertHandler{
		processor: processor,
		cache:     cache,
		logger:    logger,
		config:    config,
	}
}

// Convert handles a single-image conversion and responds with the encoded
// result inline, base64-wrapped in JSON.
func (h *ConvertHandler) Convert(c *gin.Context) {
	file, header, err := c.Request.FormFile(imageParamKey)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	opts, err := processor.ParseOptions(rawOptionsFromForm(c))
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.readUpload(file, header)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	cacheKey := h.cacheKey(data, opts)
	if cached := h.cacheGet(c, cacheKey); cached != nil {
		c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: cached})
		return
	}

	result := h.processor.Convert(c.Request.Context(), header.Filename, data, opts)
	if result.Failed() {
		h.respondConversionFailure(c, result)
		return
	}

	payload := encodePayload(result)
	h.cacheSet(c, cacheKey, payload)

	c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: payload})
}

// ConvertBulk converts every uploaded file with one shared parameter set and
// streams the outputs into a zip. Per-file failures are skipped; only a
// broken output stream aborts the batch.
func (h *ConvertHandler) ConvertBulk(c *gin.Context) {
	files, err := h.parseMultipartFiles(c)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	// The format must be validated before any header is committed; after the
	// first archive byte there is no clean JSON error path.
	opts, err := processor.ParseOptions(rawOptionsFromForm(c))
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	jobID := uuid.New().String()
	start := time.Now()

	c.Header("Content-Type", "application/zip")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "converted-to-"+string(opts.Format)+".zip"))
	c.Status(http.StatusOK)

	aw := archive.NewWriter(c.Writer)
	summary := &models.BatchSummary{}
	ctx := c.Request.Context()

	for _, fh := range files {
		if ctx.Err() != nil {
			h.logger.Warn("bulk conversion aborted, client gone",
				zap.String("job_id", jobID),
				zap.Int("processed", summary.Total))
			return
		}

		result := h.convertOne(c, fh, opts)
		summary.Add(result)
		if result.Failed() {
			h.logger.Warn("bulk file skipped",
				zap.String("job_id", jobID),
				zap.String("filename", fh.Filename),
				zap.Error(result.Err))
			continue
		}

		if err := aw.Add(result.Filename, result.Data); err != nil {
			// Stream failure is fatal for the whole batch; headers are
			// already out, so the truncated zip is the error signal.
			h.logger.Error("bulk archive write failed",
				zap.String("job_id", jobID),
				zap.Error(fmt.Errorf("%w: %v", processor.ErrStream, err)))
			return
		}
	}

	if err := aw.Close(); err != nil {
		h.logger.Error("bulk archive finalize failed",
			zap.String("job_id", jobID),
			zap.Error(fmt.Errorf("%w: %v", processor.ErrStream, err)))
		return
	}

	h.logger.Info("bulk conversion done",
		zap.String("job_id", jobID),
		zap.String("format", string(opts.Format)),
		zap.Int("total", summary.Total),
		zap.Int("converted", summary.Converted),
		zap.Int("failed", summary.Failed),
		zap.Int("savings_percent", summary.Savings()),
		zap.Duration("elapsed", time.Since(start)))
}

// HealthCheck reports liveness plus the state of optional collaborators.
func (h *ConvertHandler) HealthCheck(c *gin.Context) {
	services := map[string]string{"cache": "not configured"}
	if h.cache != nil {
		if err := h.cache.Ping(c.Request.Context()); err != nil {
			services["cache"] = "unhealthy"
		} else {
			services["cache"] = "healthy"
		}
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data: models.HealthCheck{
			Status:    "healthy",
			Timestamp: time.Now(),
			Services:  services,
		},
	})
}

func (h *ConvertHandler) respondConversionFailure(c *gin.Context, result *models.ConversionResult) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(result.Err, processor.ErrDecode):
		status = http.StatusUnprocessableEntity
	case errors.Is(result.Err, processor.ErrInvalidInput), errors.Is(result.Err, processor.ErrUnsupportedFormat):
		status = http.StatusBadRequest
	}

	c.JSON(status, models.APIResponse{
		Success: false,
		Data: models.ConversionFailure{
			Filename: result.Filename,
			Error:    result.Err.Error(),
		},
	})
}
