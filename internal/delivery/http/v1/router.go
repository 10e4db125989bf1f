package v1

import (
	"net/http"

	"go-jobtracker-backend/config"
	"go-jobtracker-backend/internal/delivery/http/middleware"
	"go-jobtracker-backend/internal/delivery/http/response"
	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/pkg/auth"
	"go-jobtracker-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RouterDeps struct {
	ProfileUC     domain.ProfileUsecase
	ApplicationUC domain.ApplicationUsecase
	AnalyzeUC     domain.AnalyzeUsecase
	JWKSProvider  *auth.Provider
	Config        *config.Config
	DB            *pgxpool.Pool
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{
			"status": "ok",
			"db":     deps.DB.Ping(c.Request.Context()) == nil,
			"redis":  redis.HealthCheck(c.Request.Context()) == nil,
		})
	})

	// Session probe: reports auth state, never rejects
	probe := api.Group("")
	probe.Use(middleware.OptionalAuth(deps.JWKSProvider, deps.Config))
	NewAuthHandler(probe)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config))
	{
		NewProfileHandler(protected, deps.ProfileUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewAnalyzeHandler(protected, deps.AnalyzeUC)
	}

	return r
}
