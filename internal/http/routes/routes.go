package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"image-convert/internal/http/handlers"
	"image-convert/internal/http/middleware"
)

type Router struct {
	convertHandler *handlers.ConvertHandler
	logger         *zap.Logger
	maxUploadSize  int64
}

func NewRouter(
	convertHandler *handlers.ConvertHandler,
	logger *zap.Logger,
	maxUploadSize int64,
) *Router {
	return &Router{
		convertHandler: convertHandler,
		logger:         logger,
		maxUploadSize:  maxUploadSize,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = r.maxUploadSize

	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.ErrorHandler(r.logger))
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	// API version 1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", r.convertHandler.HealthCheck)

		images := v1.Group("/images")
		{
			images.POST("/convert", r.convertHandler.Convert)
			images.POST("/batch/convert", r.convertHandler.ConvertBulk)
		}
	}

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"message": "Image converter is running",
		})
	})

	return router
}
