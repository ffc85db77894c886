package system

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

// Service handles system inventory business logic.
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

// Create validates and inserts a new system, then emits an audit event.
// When the request carries no resolved actor, attribution falls back to the
// owner id in the payload, matching the legacy behavior of the web UI.
func (s *Service) Create(ctx context.Context, actor auth.Actor, dto CreateSystemDTO) (*System, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	sys := &System{
		Hostname:        dto.Hostname,
		OSName:          dto.OSName,
		OSVersion:       dto.OSVersion,
		RAMSizeGB:       dto.RAMSizeGB,
		CPUModel:        dto.CPUModel,
		StorageSizeGB:   dto.StorageSizeGB,
		IPAddress:       dto.IPAddress,
		MACAddress:      dto.MACAddress,
		AntivirusStatus: dto.AntivirusStatus,
		UserID:          dto.UserID,
		NetworkID:       dto.NetworkID,
	}

	if err := s.repo.Create(sys); err != nil {
		s.logger.Error("failed to create system", "error", err, "hostname", dto.Hostname)
		return nil, internal.NewInternalError("Internal server error", err)
	}

	actorID := actor.UserID
	if actorID == nil {
		actorID = dto.UserID
	}
	s.publishAudit(ctx, actorID, "Added system", sys.ID, fmt.Sprintf("Hostname: %s", sys.Hostname))

	s.logger.Info("system created", "system_id", sys.ID, "hostname", sys.Hostname)
	return sys, nil
}

// List returns systems joined with owner/department/network names, ordered
// by hostname ascending.
func (s *Service) List(filters ListFilters) ([]View, error) {
	views, err := s.repo.List(filters)
	if err != nil {
		s.logger.Error("failed to list systems", "error", err)
		return nil, internal.NewInternalError("Internal server error", err)
	}
	if views == nil {
		views = []View{}
	}
	return views, nil
}

// Update applies the whitelisted fields present in the payload. An empty
// intersection is a validation error; zero affected rows means the id does
// not exist.
func (s *Service) Update(ctx context.Context, actor auth.Actor, id int64, dto UpdateSystemDTO) error {
	fields := dto.Fields()
	if len(fields) == 0 {
		return internal.NewValidationError("No valid fields to update", internal.ErrCodeNoValidFields)
	}

	changed := internal.UpdatedFieldNames(fields)
	fields["updated_at"] = time.Now()

	rows, err := s.repo.Update(id, fields)
	if err != nil {
		s.logger.Error("failed to update system", "error", err, "system_id", id)
		return internal.NewInternalError("Internal server error", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.publishAudit(ctx, actor.UserID, "Updated system", id,
		fmt.Sprintf("Updated fields: %s", strings.Join(changed, ", ")))

	s.logger.Info("system updated", "system_id", id, "fields", changed)
	return nil
}

func (s *Service) Delete(ctx context.Context, actor auth.Actor, id int64) error {
	rows, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete system", "error", err, "system_id", id)
		return internal.NewInternalError("Internal server error", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.publishAudit(ctx, actor.UserID, "Deleted system", id, "System deleted")

	s.logger.Info("system deleted", "system_id", id)
	return nil
}

func (s *Service) publishAudit(ctx context.Context, actorID *int64, action string, resourceID int64, note string) {
	evt := events.NewAuditAction(actorID, action, ResourceType, resourceID, note)
	if err := s.bus.PublishSync(ctx, evt); err != nil {
		// the recorder swallows its own failures; this only fires on a
		// misconfigured bus and must not affect the mutation
		s.logger.Error("audit event publish failed", "error", err, "action", action)
	}
}
