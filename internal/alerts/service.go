package alerts

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"safety-dashboard-go/internal/hub"
	"safety-dashboard-go/internal/metrics"
	"safety-dashboard-go/internal/models"
)

var (
	// ErrMissingID is returned when a resolve request carries no alert id
	ErrMissingID = errors.New("alert id is required")

	// ErrNotFound is returned when no active alert matches the id. Resolving
	// an already resolved alert also fails with ErrNotFound so double
	// resolution surfaces at the producer instead of silently no-opping.
	ErrNotFound = errors.New("active alert not found")
)

// Ingestion sources, used for metrics labels
const (
	SourceHTTP = "http"
	SourceNATS = "nats"
)

// Service runs the alert pipeline: normalize, store, broadcast. One mutex
// serializes every store mutation together with its broadcast, and subscriber
// registration together with its snapshot. That gives a connecting dashboard
// the store state at subscribe time exactly once, with every later mutation
// arriving as a delta, never dropped or duplicated.
type Service struct {
	mu    sync.Mutex
	store *Store
	hub   *hub.Hub
}

// NewService wires the store and hub into a pipeline service
func NewService(store *Store, h *hub.Hub) *Service {
	return &Service{
		store: store,
		hub:   h,
	}
}

// Ingest normalizes a raw producer payload, stores the alert and broadcasts
// it. It never fails; malformed payloads degrade to defaults.
func (s *Service) Ingest(raw map[string]interface{}, source string) models.Alert {
	alert := Normalize(raw)

	s.mu.Lock()
	s.store.Insert(alert)
	s.hub.Broadcast(hub.Event{Event: hub.EventNewAlert, Data: alert})
	s.mu.Unlock()

	metrics.AlertsIngested.WithLabelValues(alert.Severity, source).Inc()
	log.Info().
		Str("alert_id", alert.ID).
		Str("severity", alert.Severity).
		Str("camera_id", alert.CameraID).
		Str("place", alert.Place).
		Str("source", source).
		Msg("Alert ingested")

	return alert
}

// Resolve transitions an active alert to resolved and broadcasts the change.
// The transition happens exactly once per alert and is never reversed.
func (s *Service) Resolve(id string) (models.Alert, error) {
	if id == "" {
		return models.Alert{}, ErrMissingID
	}

	s.mu.Lock()
	alert, ok := s.store.ResolveActive(id, time.Now().Format(time.RFC3339))
	if ok {
		s.hub.Broadcast(hub.Event{Event: hub.EventAlertResolved, Data: alert})
	}
	s.mu.Unlock()

	if !ok {
		return models.Alert{}, ErrNotFound
	}

	metrics.AlertsResolved.Inc()
	log.Info().Str("alert_id", id).Msg("Alert resolved")
	return alert, nil
}

// Clear empties the store and broadcasts the clear signal
func (s *Service) Clear() {
	s.mu.Lock()
	s.store.Clear()
	s.hub.Broadcast(hub.Event{Event: hub.EventAlertsCleared})
	s.mu.Unlock()

	log.Info().Msg("All alerts cleared")
}

// Snapshot returns the current collection, newest-first
func (s *Service) Snapshot() []models.Alert {
	return s.store.Snapshot()
}

// Count returns the number of stored alerts
func (s *Service) Count() int {
	return s.store.Len()
}

// Subscribe registers a push-channel subscriber. Its first event is the
// store snapshot captured at the moment of subscription.
func (s *Service) Subscribe() *hub.Subscriber {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.hub.Register(s.store.Snapshot())
}

// Unsubscribe deregisters a subscriber. No error if already absent.
func (s *Service) Unsubscribe(sub *hub.Subscriber) {
	s.hub.Unregister(sub)
}
