package middleware

import (
	"net/http"

	"go-jobtracker-backend/config"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware is the cross-origin gateway for the browser extension.
// Same-origin dashboard traffic needs no special handling; the extension
// origin (and local dev origins) get credentialed CORS headers.
//
// Requests from non-allowed origins still execute server-side and receive a
// normal response with no CORS headers: the browser blocks the client-side
// read. That fail-open-server / fail-closed-client posture is inherent to
// CORS, not a bug.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	allowed := map[string]bool{
		"http://localhost:3000": true,
		"http://localhost:5173": true, // Vite dev server for the extension popup
	}
	if cfg.FrontendURL != "" {
		allowed[cfg.FrontendURL] = true
	}
	if cfg.ExtensionOrigin != "" {
		allowed[cfg.ExtensionOrigin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Caches must differentiate by Origin either way
		c.Header("Vary", "Origin")

		if origin != "" && allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Header("Access-Control-Max-Age", "86400")
		}

		// Preflight always gets 204 with no body; the CORS headers above are
		// only present for allowed origins
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
