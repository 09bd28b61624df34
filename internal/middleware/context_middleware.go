package middleware

import (
	"time"

	"go-payroll/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger memindahkan user_id dan role dari gin.Context ke
// context.Context, lalu menulis satu access log per request.
// Harus dipasang setelah AuthMiddleware.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("http")
	return func(c *gin.Context) {
		start := time.Now()

		ctx := c.Request.Context()
		if contextutil.GetRequestID(ctx) == "" {
			ctx = contextutil.WithRequestID(ctx, c.GetString("request_id"))
		}
		ctx = contextutil.WithUserID(ctx, c.GetString("user_id"))
		ctx = contextutil.WithRole(ctx, c.GetString("role"))
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		fields := append(contextutil.Fields(ctx),
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
		if c.Writer.Status() >= 500 {
			log.Error("request completed", fields...)
			return
		}
		log.Info("request completed", fields...)
	}
}
