package api

import (
	"net/http"

	_ "safety-dashboard-go/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (s *Server) setupSwagger() {
	s.router.GET("/api/info", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"title":       "Safety Dashboard API",
			"version":     s.config.Version,
			"description": "Real-time safety alert ingestion and broadcast backend",
			"swagger_ui":  "/docs/index.html",
			"endpoints": gin.H{
				"health":       "/health",
				"metrics":      "/metrics",
				"send_alert":   "/send-alert",
				"mark_safe":    "/mark-safe",
				"alerts":       "/alerts",
				"clear_alerts": "/clear-alerts",
				"websocket":    "/ws",
				"sse":          "/alerts/stream",
			},
			"port": s.config.Port,
		})
	})

	s.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.router.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
}
