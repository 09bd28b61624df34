package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader   = "Idempotency-Key"
	idempotencyLockTTL  = 30 * time.Second
	idempotencyReplyTTL = 24 * time.Hour
)

var ErrRequestInProgress = apperror.New(apperror.CodeProcessing, "A request with this Idempotency-Key is still being processed", http.StatusConflict)

type cachedReply struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func IdempotencyKey(path, userID, key string) string {
	return fmt.Sprintf("idemp:%s:%s:%s", path, userID, key)
}

// Idempotency replays the stored reply of a finished POST with the same
// Idempotency-Key and rejects a duplicate that arrives while the first is
// still running. Requests without the header pass through untouched.
func Idempotency(rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("middleware.idempotency")
	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyHeader)
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := IdempotencyKey(c.FullPath(), c.GetString("user_id"), idempKey)
		lockKey := cacheKey + ":lock"

		// 1. Sudah pernah selesai? kirim ulang hasilnya
		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var reply cachedReply
			if json.Unmarshal([]byte(val), &reply) == nil {
				c.Header("Idempotent-Replayed", "true")
				c.Data(reply.Status, "application/json; charset=utf-8", reply.Body)
				c.Abort()
				return
			}
		}

		// 2. ATOMIC LOCK (SetNX)
		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			// redis bermasalah: jangan blokir request
			log.Warn("idempotency lock failed, continuing without it", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.AbortWithError(c, ErrRequestInProgress)
			return
		}

		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status < http.StatusInternalServerError {
			payload, err := json.Marshal(cachedReply{Status: status, Body: writer.body.Bytes()})
			if err == nil {
				if err := rdb.Set(ctx, cacheKey, payload, idempotencyReplyTTL).Err(); err != nil {
					log.Warn("store idempotent reply failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		if err := rdb.Del(ctx, lockKey).Err(); err != nil {
			log.Warn("release idempotency lock failed", zap.String("key", lockKey), zap.Error(err))
		}
	}
}
