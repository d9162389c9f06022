package messaging

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"safety-dashboard-go/internal/alerts"
	"safety-dashboard-go/internal/config"
	"safety-dashboard-go/internal/logging"
)

// Service bridges NATS into the ingestion pipeline. Detection workers that
// publish alerts on a subject instead of calling POST /send-alert land in the
// same normalize/store/broadcast path.
type Service struct {
	conn   *nats.Conn
	cfg    *config.Config
	logger zerolog.Logger
	sub    *nats.Subscription
}

func NewService(cfg *config.Config) (*Service, error) {
	logger := logging.NewServiceLogger(cfg, "messaging")

	opts := []nats.Option{
		nats.Name("safety-dashboard"),
		nats.Timeout(cfg.NatsConnectTimeout),
		nats.ReconnectWait(cfg.NatsReconnectWait),
		nats.MaxReconnects(cfg.NatsMaxReconnects),
	}

	conn, err := nats.Connect(cfg.NatsURL, opts...)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("url", cfg.NatsURL).Msg("NATS connection established")

	return &Service{
		conn:   conn,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// SubscribeAlerts consumes the alerts subject and feeds each payload into
// the pipeline. Uses a queue group so multiple dashboard instances behind
// the same broker split the work rather than duplicate alerts.
func (s *Service) SubscribeAlerts(pipeline *alerts.Service) error {
	sub, err := s.conn.QueueSubscribe(s.cfg.NatsAlertsSubject, s.cfg.NatsQueueGroup, func(msg *nats.Msg) {
		raw := map[string]interface{}{}
		if err := json.Unmarshal(msg.Data, &raw); err != nil {
			// Same availability bias as the HTTP path: a garbled payload
			// still becomes an all-defaults alert.
			s.logger.Warn().Err(err).Str("subject", msg.Subject).Msg("Unparseable NATS alert payload, falling back to defaults")
		}
		pipeline.Ingest(raw, alerts.SourceNATS)
	})
	if err != nil {
		return err
	}

	s.sub = sub
	s.logger.Info().
		Str("subject", s.cfg.NatsAlertsSubject).
		Str("queue", s.cfg.NatsQueueGroup).
		Msg("Subscribed to NATS alerts")
	return nil
}

func (s *Service) IsConnected() bool {
	return s.conn != nil && s.conn.IsConnected()
}

func (s *Service) Shutdown(ctx context.Context) error {
	if s.sub != nil {
		if err := s.sub.Drain(); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to drain alerts subscription")
		}
	}
	if s.conn != nil {
		// Try graceful drain, fallback to immediate close
		if err := s.conn.Drain(); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to drain NATS connection gracefully, closing immediately")
			s.conn.Close()
		}
	}
	return nil
}
