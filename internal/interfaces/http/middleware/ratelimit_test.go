package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMemoryRateLimiter(t *testing.T) {
	t.Run("AllowsUpToLimit", func(t *testing.T) {
		rl := NewMemoryRateLimiter(3, time.Minute)

		for i := 0; i < 3; i++ {
			allowed, _, err := rl.Allow(t.Context(), "10.0.0.1")
			assert.NoError(t, err)
			assert.True(t, allowed, "request %d should be allowed", i+1)
		}

		allowed, remaining, err := rl.Allow(t.Context(), "10.0.0.1")
		assert.NoError(t, err)
		assert.False(t, allowed)
		assert.Zero(t, remaining)
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		rl := NewMemoryRateLimiter(1, time.Minute)

		allowed, _, _ := rl.Allow(t.Context(), "10.0.0.1")
		assert.True(t, allowed)

		allowed, _, _ = rl.Allow(t.Context(), "10.0.0.2")
		assert.True(t, allowed)

		allowed, _, _ = rl.Allow(t.Context(), "10.0.0.1")
		assert.False(t, allowed)
	})

	t.Run("WindowResets", func(t *testing.T) {
		rl := NewMemoryRateLimiter(1, 20*time.Millisecond)

		allowed, _, _ := rl.Allow(t.Context(), "10.0.0.1")
		assert.True(t, allowed)
		allowed, _, _ = rl.Allow(t.Context(), "10.0.0.1")
		assert.False(t, allowed)

		time.Sleep(30 * time.Millisecond)

		allowed, _, _ = rl.Allow(t.Context(), "10.0.0.1")
		assert.True(t, allowed)
	})

	t.Run("RemainingCountsDown", func(t *testing.T) {
		rl := NewMemoryRateLimiter(5, time.Minute)

		_, remaining, _ := rl.Allow(t.Context(), "10.0.0.1")
		assert.Equal(t, 4, remaining)
		_, remaining, _ = rl.Allow(t.Context(), "10.0.0.1")
		assert.Equal(t, 3, remaining)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	newLimitedRouter := func(limiter Limiter) *gin.Engine {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.POST("/auth/login", RateLimit(limiter), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("BlocksAfterLimit", func(t *testing.T) {
		r := newLimitedRouter(NewMemoryRateLimiter(2, time.Minute))

		var lastCode int
		var lastBody string
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			lastCode = w.Code
			lastBody = w.Body.String()
		}

		assert.Equal(t, http.StatusTooManyRequests, lastCode)
		assert.Contains(t, lastBody, "RATE_LIMIT_EXCEEDED")
	})

	t.Run("SetsRateLimitHeaders", func(t *testing.T) {
		r := newLimitedRouter(NewMemoryRateLimiter(10, time.Minute))

		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "9", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("CustomKeyExtractor", func(t *testing.T) {
		limiter := NewMemoryRateLimiter(1, time.Minute)
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.POST("/auth/login", RateLimitByKey(limiter, func(c *gin.Context) string {
			return c.GetHeader("X-Device-ID")
		}), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		first := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		first.Header.Set("X-Device-ID", "device-a")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, first)
		assert.Equal(t, http.StatusOK, w.Code)

		second := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		second.Header.Set("X-Device-ID", "device-a")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, second)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)

		other := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		other.Header.Set("X-Device-ID", "device-b")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, other)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
