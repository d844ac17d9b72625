package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/httputil"
)

// Recovery turns a panic into a 500 with the standard error body.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			logger.Error("panic recovered",
				zap.Any("panic", r),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetString(RequestIDKey)),
				zap.ByteString("stack", debug.Stack()),
			)
			httputil.AbortWithError(c, apperror.Internal(fmt.Errorf("panic: %v", r)))
		}()
		c.Next()
	}
}
