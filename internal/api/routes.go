package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"safety-dashboard-go/internal/api/middleware"
)

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler.HealthCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Only the producer-facing ingestion endpoint is keyed. Resolution and
	// clearing are dashboard actions and stay open.
	s.router.POST("/send-alert", middleware.APIKeyAuth(s.config.APIKey), s.alertsHandler.SendAlert)
	s.router.POST("/mark-safe", s.alertsHandler.MarkSafe)
	s.router.GET("/alerts", s.alertsHandler.ListAlerts)
	s.router.POST("/clear-alerts", s.alertsHandler.ClearAlerts)

	// Push channels for connected dashboards
	s.router.GET("/ws", s.streamHandler.WebSocket)
	s.router.GET("/alerts/stream", s.streamHandler.SSE)

	// Snippet images written by the detection producers
	s.router.Static("/snippets", s.config.SnippetsDir)
}
