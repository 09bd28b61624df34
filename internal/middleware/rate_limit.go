package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var ErrTooManyRequests = apperror.New(apperror.CodeTooManyRequests, "Too many requests", http.StatusTooManyRequests)

// limiter yang tidak dipakai selama idleTTL dibuang saat sweep
const idleTTL = 10 * time.Minute

type keyedEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter menyimpan satu token bucket per key (IP atau user).
type KeyedRateLimiter struct {
	mu        sync.Mutex
	entries   map[string]*keyedEntry
	limit     rate.Limit // request per detik
	burst     int
	now       func() time.Time
	lastSweep time.Time
}

func NewKeyedRateLimiter(limit rate.Limit, burst int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		entries: make(map[string]*keyedEntry),
		limit:   limit,
		burst:   burst,
		now:     time.Now,
	}
}

// Reserve mengambil satu token untuk key. Jika ditolak, retryAfter berisi
// perkiraan waktu tunggu.
func (k *KeyedRateLimiter) Reserve(key string) (ok bool, retryAfter time.Duration) {
	now := k.now()

	k.mu.Lock()
	defer k.mu.Unlock()

	k.sweep(now)

	entry, exists := k.entries[key]
	if !exists {
		entry = &keyedEntry{limiter: rate.NewLimiter(k.limit, k.burst)}
		k.entries[key] = entry
	}
	entry.lastSeen = now

	if entry.limiter.AllowN(now, 1) {
		return true, 0
	}

	r := entry.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, 0
	}
	retryAfter = r.DelayFrom(now)
	r.CancelAt(now)
	return false, retryAfter
}

// Len dipakai di test untuk memastikan sweep berjalan.
func (k *KeyedRateLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

func (k *KeyedRateLimiter) sweep(now time.Time) {
	if now.Sub(k.lastSweep) < idleTTL {
		return
	}
	for key, entry := range k.entries {
		if now.Sub(entry.lastSeen) >= idleTTL {
			delete(k.entries, key)
		}
	}
	k.lastSweep = now
}

func rateLimitBy(limiter *KeyedRateLimiter, keyOf func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyOf(c)
		if key == "" {
			c.Next()
			return
		}

		ok, retryAfter := limiter.Reserve(key)
		if !ok {
			if retryAfter > 0 {
				secs := int(math.Ceil(retryAfter.Seconds()))
				c.Header("Retry-After", strconv.Itoa(secs))
			}
			response.AbortWithError(c, ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

func RateLimitByIP(limit rate.Limit, burst int) gin.HandlerFunc {
	return rateLimitBy(NewKeyedRateLimiter(limit, burst), func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// RateLimitByUser hanya membatasi request yang sudah terautentikasi.
func RateLimitByUser(limit rate.Limit, burst int) gin.HandlerFunc {
	return rateLimitBy(NewKeyedRateLimiter(limit, burst), func(c *gin.Context) string {
		return c.GetString("user_id")
	})
}
