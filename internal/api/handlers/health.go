package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"safety-dashboard-go/internal/alerts"
)

type HealthHandler struct {
	service   *alerts.Service
	startedAt time.Time
}

func NewHealthHandler(service *alerts.Service) *HealthHandler {
	return &HealthHandler{
		service:   service,
		startedAt: time.Now(),
	}
}

type HealthResponse struct {
	Status     string  `json:"status" example:"healthy"`
	Uptime     float64 `json:"uptime" example:"731.4"`
	AlertCount int     `json:"alertCount" example:"12"`
}

// HealthCheck reports process liveness
// @Summary Health check
// @Description Process liveness probe with uptime and stored alert count
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:     "healthy",
		Uptime:     time.Since(h.startedAt).Seconds(),
		AlertCount: h.service.Count(),
	})
}
