package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/review-app/utils"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	r := gin.New()
	r.Use(mw...)
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusCreated) })
	return r
}

func serve(r *gin.Engine, method string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterWindow(t *testing.T) {
	rl := NewRateLimiter(2, time.Second)
	now := time.Now()

	assert.True(t, rl.allow("1.1.1.1", now))
	assert.True(t, rl.allow("1.1.1.1", now.Add(10*time.Millisecond)))
	assert.False(t, rl.allow("1.1.1.1", now.Add(20*time.Millisecond)))
	assert.True(t, rl.allow("2.2.2.2", now.Add(20*time.Millisecond)))

	// Window has slid past the first two requests.
	assert.True(t, rl.allow("1.1.1.1", now.Add(1100*time.Millisecond)))
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newEngine(NewRateLimiter(1, time.Minute).RateLimit())

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodGet).Code)
}

func TestWriteLimiterOnlyThrottlesWrites(t *testing.T) {
	r := newEngine(NewWriteLimiter(time.Hour, 2).Limit())

	assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost).Code)
	assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost).Code)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet).Code)
	}
}

func TestRateLimiterForgetsIdleClients(t *testing.T) {
	rl := NewRateLimiter(2, time.Second)
	now := time.Now()

	for i := 0; i < 50; i++ {
		assert.True(t, rl.allow(fmt.Sprintf("10.0.0.%d", i), now))
	}
	assert.Len(t, rl.ips, 50)

	assert.True(t, rl.allow("10.0.1.1", now.Add(2*time.Second)))
	assert.Len(t, rl.ips, 1)
	assert.Contains(t, rl.ips, "10.0.1.1")
}

func TestWriteLimiterForgetsIdleClients(t *testing.T) {
	wl := NewWriteLimiter(time.Second, 2)
	now := time.Now()

	busy := wl.limiter("1.1.1.1", now)
	assert.True(t, busy.AllowN(now, 2))
	wl.limiter("2.2.2.2", now.Add(time.Second))
	assert.Len(t, wl.visitors, 2)

	// Within the refill period nobody is dropped.
	assert.Same(t, busy, wl.limiter("1.1.1.1", now.Add(1500*time.Millisecond)))
	assert.Len(t, wl.visitors, 2)

	later := now.Add(5 * time.Second)
	fresh := wl.limiter("3.3.3.3", later)
	assert.Len(t, wl.visitors, 1)
	assert.True(t, fresh.AllowN(later, 2))
}

func TestCORSMiddlewares(t *testing.T) {
	r := newEngine(CORSMiddlewares(""))
	w := serve(r, http.MethodGet)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))

	r = newEngine(CORSMiddlewares("http://localhost:5173"))
	r.OPTIONS("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	w = serve(r, http.MethodOptions)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestSecurityHeadersAndLogger(t *testing.T) {
	r := newEngine(SecurityHeaders(), LoggerMiddleware())
	w := serve(r, http.MethodGet)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}
