package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-jobtracker-backend/config"
	"go-jobtracker-backend/internal/delivery/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		FrontendURL:     "https://tracker.example.com",
		ExtensionOrigin: "chrome-extension://abcdefghijklmnop",
	}

	r := gin.New()
	r.Use(middleware.CORSMiddleware(cfg))
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestCORSAllowedOrigin(t *testing.T) {
	r := newCORSRouter()

	t.Run("preflight from the extension gets 204 with credentialed headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/applications", nil)
		req.Header.Set("Origin", "chrome-extension://abcdefghijklmnop")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "chrome-extension://abcdefghijklmnop", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
	})

	t.Run("simple request from the dashboard echoes its origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "https://tracker.example.com")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://tracker.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("local dev origins are always allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestCORSDisallowedOrigin(t *testing.T) {
	r := newCORSRouter()

	t.Run("preflight still gets 204 but carries no CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/applications", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("simple request executes but leaks no CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("responses vary by origin either way", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, "Origin", w.Header().Get("Vary"))
	})
}
