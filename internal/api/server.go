package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"safety-dashboard-go/internal/alerts"
	"safety-dashboard-go/internal/api/handlers"
	"safety-dashboard-go/internal/api/middleware"
	"safety-dashboard-go/internal/config"
)

type Server struct {
	config *config.Config
	router *gin.Engine
	server *http.Server

	alertsHandler *handlers.AlertsHandler
	healthHandler *handlers.HealthHandler
	streamHandler *handlers.StreamHandler
}

func NewServer(cfg *config.Config, service *alerts.Service) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		config:        cfg,
		router:        gin.New(),
		alertsHandler: handlers.NewAlertsHandler(service),
		healthHandler: handlers.NewHealthHandler(service),
		streamHandler: handlers.NewStreamHandler(service),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupSwagger()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: s.router,
	}

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recovery())
	s.router.Use(middleware.Logger())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.RequestContext())
}

func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}
