package auditlog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yellomango9/it-mgmt-tool/internal/core/events"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Record appends one entry to the trail. Calls without an actor id are a
// silent no-op, and insert failures are logged but never surfaced: audit
// recording must not affect the outcome of the operation that triggered it.
func (s *Service) Record(actorID *int64, action, resourceType string, resourceID int64, contextNote string) {
	if actorID == nil || *actorID == 0 {
		s.logger.Warn("skipping audit entry: no actor id",
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID)
		return
	}

	entry := &LogEntry{
		UserID:       *actorID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Context:      contextNote,
	}

	if err := s.repo.Insert(entry); err != nil {
		s.logger.Error("failed to write audit entry",
			"error", err,
			"actor_id", *actorID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID)
	}
}

// List returns the full trail newest first, enriched with actor names.
func (s *Service) List() ([]EntryView, error) {
	views, err := s.repo.ListWithActor()
	if err != nil {
		s.logger.Error("failed to list audit entries", "error", err)
		return nil, err
	}
	if views == nil {
		views = []EntryView{}
	}
	return views, nil
}

// HandleAuditEvent is the event-bus sink for audit.action events. It always
// returns nil so that publishing after a commit can never fail the mutation.
func (s *Service) HandleAuditEvent(_ context.Context, event events.Event) error {
	payload, ok := event.Payload().(events.AuditActionPayload)
	if !ok {
		s.logger.Error("unexpected audit event payload", "event_type", event.EventType(),
			"payload", fmt.Sprintf("%T", event.Payload()))
		return nil
	}

	s.Record(payload.ActorID, payload.Action, payload.ResourceType, payload.ResourceID, payload.Context)
	return nil
}

// RegisterRecorder subscribes the service to audit events on the bus.
func RegisterRecorder(bus *events.EventBus, svc *Service) {
	bus.Subscribe(events.AuditActionEventType, svc.HandleAuditEvent)
}
