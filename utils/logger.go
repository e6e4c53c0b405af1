package utils

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the id RequestLogger tags every request with
const RequestIDHeader = "X-Request-ID"

func NewLogger() (*zap.Logger, error) {
	if os.Getenv("ENVIRONMENT") == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// RequestLogger is a gin middleware logging every served request with the given logger.
// Requests without an X-Request-ID header get a fresh one, echoed back in the response.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path

		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Header(RequestIDHeader, requestID)

		ctx.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", ctx.Request.Method),
			zap.String("path", path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(ctx.Errors) > 0 {
			logger.Error(ctx.Errors.String(), fields...)
			return
		}
		logger.Info("request served", fields...)
	}
}
