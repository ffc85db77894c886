package peripheral

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yellomango9/it-mgmt-tool/internal"
	"github.com/yellomango9/it-mgmt-tool/internal/auth"
	"github.com/yellomango9/it-mgmt-tool/internal/core/events"
)

type Service struct {
	repo   Repository
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo Repository, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
	}
}

func (s *Service) Create(ctx context.Context, actor auth.Actor, dto CreatePeripheralDTO) (*Peripheral, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	p := &Peripheral{
		Type:               dto.Type,
		Model:              dto.Model,
		SerialNumber:       dto.SerialNumber,
		AssignedToSystemID: dto.AssignedToSystemID,
	}

	if err := s.repo.Create(p); err != nil {
		s.logger.Error("failed to create peripheral", "error", err, "serial_number", dto.SerialNumber)
		return nil, internal.NewInternalError("Internal server error", err)
	}

	actorID := actor.UserID
	if actorID == nil {
		actorID = dto.UserID
	}
	s.publishAudit(ctx, actorID, "Added peripheral", p.ID,
		fmt.Sprintf("Type: %s | Serial: %s", p.Type, p.SerialNumber))

	s.logger.Info("peripheral created", "peripheral_id", p.ID, "type", p.Type)
	return p, nil
}

func (s *Service) List() ([]View, error) {
	views, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list peripherals", "error", err)
		return nil, internal.NewInternalError("Internal server error", err)
	}
	if views == nil {
		views = []View{}
	}
	return views, nil
}

func (s *Service) Update(ctx context.Context, actor auth.Actor, id int64, dto UpdatePeripheralDTO) error {
	fields := dto.Fields()
	if len(fields) == 0 {
		return internal.NewValidationError("No valid fields to update", internal.ErrCodeNoValidFields)
	}

	changed := internal.UpdatedFieldNames(fields)
	fields["updated_at"] = time.Now()

	rows, err := s.repo.Update(id, fields)
	if err != nil {
		s.logger.Error("failed to update peripheral", "error", err, "peripheral_id", id)
		return internal.NewInternalError("Internal server error", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.publishAudit(ctx, actor.UserID, "Updated peripheral", id,
		fmt.Sprintf("Updated fields: %s", strings.Join(changed, ", ")))

	s.logger.Info("peripheral updated", "peripheral_id", id, "fields", changed)
	return nil
}

func (s *Service) Delete(ctx context.Context, actor auth.Actor, id int64) error {
	rows, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete peripheral", "error", err, "peripheral_id", id)
		return internal.NewInternalError("Internal server error", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.publishAudit(ctx, actor.UserID, "Deleted peripheral", id, "Peripheral deleted")

	s.logger.Info("peripheral deleted", "peripheral_id", id)
	return nil
}

func (s *Service) publishAudit(ctx context.Context, actorID *int64, action string, resourceID int64, note string) {
	evt := events.NewAuditAction(actorID, action, ResourceType, resourceID, note)
	if err := s.bus.PublishSync(ctx, evt); err != nil {
		s.logger.Error("audit event publish failed", "error", err, "action", action)
	}
}
