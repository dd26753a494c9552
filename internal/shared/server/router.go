package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerpilot-backend/internal/applications"
	"careerpilot-backend/internal/generate"
	"careerpilot-backend/internal/shared/config"
	"careerpilot-backend/internal/shared/server/middleware"
)

// NewRouter wires the middleware chain and mounts every route group.
func NewRouter(cfg config.Config, apps *applications.Handler, gen *generate.Handler) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	appGroup := r.Group("/api/applications")
	apps.RegisterRoutes(appGroup)
	gen.RegisterRoutes(appGroup)

	gen.RegisterAIRoutes(r.Group("/api/ai"))

	return r
}
