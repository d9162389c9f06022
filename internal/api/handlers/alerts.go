package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"safety-dashboard-go/internal/alerts"
	"safety-dashboard-go/internal/logging"
	"safety-dashboard-go/internal/models"
)

type AlertsHandler struct {
	service *alerts.Service
}

func NewAlertsHandler(service *alerts.Service) *AlertsHandler {
	return &AlertsHandler{service: service}
}

type AlertResponse struct {
	Success bool         `json:"success" example:"true"`
	Alert   models.Alert `json:"alert"`
}

type AlertListResponse struct {
	Success bool           `json:"success" example:"true"`
	Count   int            `json:"count" example:"3"`
	Alerts  []models.Alert `json:"alerts"`
}

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Alert not found"`
}

type MarkSafeRequest struct {
	ID string `json:"id" example:"f1c0a2de-7b8a-4f7e-9f93-2f3a7c1b9d20"`
}

// SendAlert ingests a raw alert from a detection producer
// @Summary Submit a new safety alert
// @Description Normalize, store and broadcast an alert reported by a detection process
// @Tags alerts
// @Accept json
// @Produce json
// @Param x-api-key header string true "Shared producer key"
// @Param alert body object true "Raw alert fields; missing fields take defaults"
// @Success 200 {object} AlertResponse
// @Failure 403 {object} ErrorResponse
// @Router /send-alert [post]
func (h *AlertsHandler) SendAlert(c *gin.Context) {
	raw := map[string]interface{}{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		// Ingestion stays available under garbled producer output; an
		// unreadable body means every field takes its default.
		logging.Warn(c).Err(err).Msg("Unparseable alert payload, falling back to defaults")
	}

	alert := h.service.Ingest(raw, alerts.SourceHTTP)
	c.JSON(http.StatusOK, AlertResponse{Success: true, Alert: alert})
}

// MarkSafe resolves an active alert
// @Summary Mark an alert as safe
// @Description Transition an active alert to resolved and broadcast the change
// @Tags alerts
// @Accept json
// @Produce json
// @Param request body MarkSafeRequest true "Alert id"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /mark-safe [post]
func (h *AlertsHandler) MarkSafe(c *gin.Context) {
	var req MarkSafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id is required"})
		return
	}

	alert, err := h.service.Resolve(req.ID)
	switch {
	case errors.Is(err, alerts.ErrMissingID):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id is required"})
		return
	case errors.Is(err, alerts.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Alert not found or already resolved"})
		return
	}

	c.JSON(http.StatusOK, AlertResponse{Success: true, Alert: alert})
}

// ListAlerts returns the current snapshot
// @Summary List all alerts
// @Description Full current snapshot, newest-first
// @Tags alerts
// @Produce json
// @Success 200 {object} AlertListResponse
// @Router /alerts [get]
func (h *AlertsHandler) ListAlerts(c *gin.Context) {
	snapshot := h.service.Snapshot()
	c.JSON(http.StatusOK, AlertListResponse{
		Success: true,
		Count:   len(snapshot),
		Alerts:  snapshot,
	})
}

// ClearAlerts empties the store
// @Summary Clear all alerts
// @Description Unconditionally empty the store and broadcast the clear signal
// @Tags alerts
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /clear-alerts [post]
func (h *AlertsHandler) ClearAlerts(c *gin.Context) {
	h.service.Clear()
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
