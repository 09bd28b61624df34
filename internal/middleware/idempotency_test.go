package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func idempotencyRouter(t *testing.T) (*gin.Engine, redismock.ClientMock, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rdb, mock := redismock.NewClientMock()
	calls := 0

	r := gin.New()
	r.POST("/salaries/generate/", func(c *gin.Context) {
		c.Set("user_id", "u-1")
		c.Next()
	}, middleware.Idempotency(rdb, zap.NewNop()), func(c *gin.Context) {
		calls++
		response.Success(c, http.StatusCreated, gin.H{"n": 1})
	})
	return r, mock, &calls
}

func TestIdempotency(t *testing.T) {
	cacheKey := middleware.IdempotencyKey("/salaries/generate/", "u-1", "abc")
	lockKey := cacheKey + ":lock"
	body := `{"ok":true,"data":{"n":1}}`
	stored, err := json.Marshal(struct {
		Status int             `json:"status"`
		Body   json.RawMessage `json:"body"`
	}{http.StatusCreated, json.RawMessage(body)})
	require.NoError(t, err)

	t.Run("first request runs handler and stores reply", func(t *testing.T) {
		r, mock, calls := idempotencyRouter(t)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, stored, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/salaries/generate/", nil)
		req.Header.Set(middleware.IdempotencyHeader, "abc")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay skips handler", func(t *testing.T) {
		r, mock, calls := idempotencyRouter(t)

		mock.ExpectGet(cacheKey).SetVal(string(stored))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/salaries/generate/", nil)
		req.Header.Set(middleware.IdempotencyHeader, "abc")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.JSONEq(t, body, w.Body.String())
		assert.Equal(t, 0, *calls)
	})

	t.Run("concurrent duplicate is rejected", func(t *testing.T) {
		r, mock, calls := idempotencyRouter(t)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/salaries/generate/", nil)
		req.Header.Set(middleware.IdempotencyHeader, "abc")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.Equal(t, 0, *calls)
	})

	t.Run("no header passes through", func(t *testing.T) {
		r, mock, calls := idempotencyRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/salaries/generate/", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
