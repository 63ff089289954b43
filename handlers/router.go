package handlers

import (
	"classical-cipher-backend/config"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// NewRouter wires the API routes with CORS and request logging.
func NewRouter(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	if slices.Contains(cfg.Server.AllowedOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}
	corsConfig.ExposeHeaders = []string{"X-Cipher-Algorithm", "X-Cipher-IoC", requestIDHeader}
	router.Use(cors.New(corsConfig))

	cipherHandler := NewCipherHandler(cfg.Limits, logger)

	// API Routes
	api := router.Group("/api/v1")
	{
		api.GET("/health", cipherHandler.HealthCheck)
		api.GET("/ciphers", cipherHandler.ListCiphers)

		cipher := api.Group("/cipher")
		{
			cipher.POST("/transform", cipherHandler.Transform)
			cipher.POST("/transform-file", cipherHandler.TransformFile)
			cipher.POST("/hill-inverse", cipherHandler.HillInverse)
		}
	}

	return router
}

// RequestLogger tags each request with an id and logs it once it completes.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		c.Next()

		logger.Info("Request handled",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
