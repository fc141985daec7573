// Package http wires the gin engine, middleware and route table.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenflow-inc/greenflow/internal/interfaces/http/handlers"
	"github.com/greenflow-inc/greenflow/internal/interfaces/http/middleware"
	"github.com/greenflow-inc/greenflow/internal/shared/config"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
	"github.com/greenflow-inc/greenflow/internal/shared/utils"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Catalog      *handlers.CatalogHandler
	Garden       *handlers.GardenHandler
	Chat         *handlers.ChatHandler
	Consultation *handlers.ConsultationHandler
	Subscription *handlers.SubscriptionHandler
	Admin        *handlers.AdminHandler
}

// Router owns the configured gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the engine, installs middleware and mounts the route
// table.
func NewRouter(cfg *config.ServerConfig, h Handlers, authMW *middleware.AuthMiddleware, log logger.Interface) *Router {
	gin.SetMode(ginMode(cfg.Mode))

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.CORS([]string{"http://localhost:3000", "http://localhost:8080"}))

	engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.Auth.Register)
			authGroup.POST("/login", h.Auth.Login)
			authGroup.POST("/logout", h.Auth.Logout)
			authGroup.GET("/me", authMW.RequireAuth(), h.Auth.Me)
		}

		catalogGroup := api.Group("/catalog")
		{
			catalogGroup.GET("/species", h.Catalog.ListSpecies)
			catalogGroup.GET("/species/:id", h.Catalog.GetSpecies)
			catalogGroup.GET("/packages", h.Catalog.ListPackages)
			catalogGroup.GET("/packages/:id", h.Catalog.GetPackage)
			catalogGroup.GET("/features", h.Catalog.Features)
		}

		gardenGroup := api.Group("/garden", authMW.RequireAuth())
		{
			gardenGroup.POST("/plants", h.Garden.AddPlant)
			gardenGroup.GET("/progress", h.Garden.Progress)
		}
		api.GET("/dashboard", authMW.RequireAuth(), h.Garden.Dashboard)

		chatGroup := api.Group("/chat")
		{
			chatGroup.POST("/ask", authMW.OptionalAuth(), h.Chat.Ask)
			chatGroup.GET("/history", authMW.RequireAuth(), h.Chat.History)
		}

		consultGroup := api.Group("/consultations")
		{
			consultGroup.POST("", h.Consultation.Book)
			consultGroup.GET("", authMW.RequireAuth(), h.Consultation.List)
		}

		subGroup := api.Group("/subscription", authMW.RequireAuth())
		{
			subGroup.POST("", h.Subscription.Subscribe)
			subGroup.GET("/status", h.Subscription.Status)
			subGroup.POST("/package", h.Subscription.SelectPackage)
		}

		adminGroup := api.Group("/admin", authMW.RequireAuth())
		{
			adminGroup.GET("/stats", h.Admin.Stats)
		}
	}

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
