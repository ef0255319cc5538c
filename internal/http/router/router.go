package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/disaster-backend/internal/config"
	"github.com/ignatzorin/disaster-backend/internal/http/handlers"
	"github.com/ignatzorin/disaster-backend/internal/http/middleware"
	"github.com/ignatzorin/disaster-backend/internal/service"
)

func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	disasterHandler *handlers.DisasterHandler,
	volunteerHandler *handlers.VolunteerHandler,
	wsHandler *handlers.WSHandler,
	healthHandler *handlers.HealthHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))
	{
		authGroup.POST("/login", authHandler.Login)
	}

	// токен передаётся в query, браузерный WebSocket не умеет в заголовки
	api.GET("/ws", wsHandler.Handle)

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(tokenManager))

	adminOnly := middleware.RequireRole(service.RoleAdmin)
	volunteerOnly := middleware.RequireRole(service.RoleVolunteer)
	validID := middleware.IDValidator("id")

	disasters := protected.Group("/disasters")
	{
		disasters.POST("", disasterHandler.Submit)
		disasters.GET("", disasterHandler.List)
		disasters.GET("/:id", validID, disasterHandler.Get)
		disasters.DELETE("/:id", validID, disasterHandler.Delete)
		disasters.POST("/:id/assign", validID, adminOnly, disasterHandler.Assign)
		disasters.POST("/:id/auto-assign", validID, adminOnly, disasterHandler.AutoAssign)
		disasters.POST("/:id/resolve", validID, adminOnly, disasterHandler.Resolve)
		disasters.POST("/:id/updates", validID, volunteerOnly, disasterHandler.AddUpdate)
	}

	volunteers := protected.Group("/volunteers")
	{
		volunteers.GET("", volunteerHandler.List)
		volunteers.PUT("/:id/message", adminOnly, volunteerHandler.SetMessage)
		volunteers.POST("/me/location", volunteerOnly, volunteerHandler.UpdateMyLocation)
	}

	return r
}
