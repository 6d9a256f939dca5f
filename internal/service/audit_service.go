package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Schmandi/HIRED-server/internal/events"
)

// AuditService writes a structured log line for every auth lifecycle
// event. It is the only consumer of the dispatcher; the core never blocks
// on it beyond the synchronous publish.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService builds the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes the audit log to every auth event type.
func (s *AuditService) RegisterHandlers() {
	for _, eventType := range []events.EventType{
		events.EventLoginSucceeded,
		events.EventLoginFailed,
		events.EventTokenRefreshed,
		events.EventLoggedOut,
	} {
		s.dispatcher.Subscribe(eventType, s.record)
	}
}

func (s *AuditService) record(_ context.Context, event events.Event) error {
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.Time("occurred_at", event.OccurredAt),
	}
	if event.Username != "" {
		fields = append(fields, zap.String("username", event.Username))
	}
	for key, value := range event.Metadata {
		fields = append(fields, zap.String(key, value))
	}
	s.logger.Info("auth event", fields...)
	return nil
}
