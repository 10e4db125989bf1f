package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"go-jobtracker-backend/config"
	"go-jobtracker-backend/internal/delivery/http/response"
	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware resolves the caller's identity from the Supabase session
// token and aborts with a generic 401 when it is missing or invalid. The
// denial never distinguishes why.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c, jwksProvider, cfg)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Next()
	}
}

// OptionalAuth resolves identity when a valid token is present but never
// rejects the request. Used by /api/auth/me, which reports rather than
// enforces authentication.
func OptionalAuth(jwksProvider *auth.Provider, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := resolveUser(c, jwksProvider, cfg); ok {
			c.Set(string(domain.KeyUserID), user.ID)
			c.Set(string(domain.KeyUserEmail), user.Email)
		}
		c.Next()
	}
}

func resolveUser(c *gin.Context, jwksProvider *auth.Provider, cfg *config.Config) (*domain.AuthUser, bool) {
	var tokenString string

	// 1. Try the Authorization header
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	} else {
		// 2. Fall back to the session cookie
		if cookie, err := c.Cookie("auth_token"); err == nil && cookie != "" {
			tokenString = cookie
		}
	}

	if tokenString == "" {
		return nil, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
			// HS256 - shared project secret
			if cfg.SupabaseJWTSecret == "" {
				return nil, fmt.Errorf("HS256 token received but SUPABASE_JWT_SECRET is not configured")
			}
			return []byte(cfg.SupabaseJWTSecret), nil
		}

		if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
			// RS256 - project JWKS
			return jwksProvider.KeyFunc(token)
		}

		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, false
	}
	email, _ := claims["email"].(string)

	return &domain.AuthUser{ID: sub, Email: email}, true
}
