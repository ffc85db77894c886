package complaint

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

func (s *Service) Create(ctx context.Context, actor auth.Actor, dto CreateComplaintDTO) (*Complaint, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	c := &Complaint{
		UserID:      *dto.UserID,
		Subject:     dto.Subject,
		Description: dto.Description,
		Status:      StatusOpen,
		Priority:    PriorityMedium,
	}
	if dto.Status != nil {
		c.Status = *dto.Status
	}
	if dto.Priority != nil {
		c.Priority = *dto.Priority
	}

	if err := s.repo.Create(c); err != nil {
		s.logger.Error("failed to create complaint", "error", err, "user_id", c.UserID)
		return nil, internal.NewInternalError("Internal server error", err)
	}

	actorID := actor.UserID
	if actorID == nil {
		actorID = dto.UserID
	}
	s.publishAudit(ctx, actorID, "Added complaint", c.ID, fmt.Sprintf("Subject: %s", c.Subject))

	s.logger.Info("complaint created", "complaint_id", c.ID, "user_id", c.UserID)
	return c, nil
}

func (s *Service) List(filters ListFilters) ([]View, error) {
	views, err := s.repo.List(filters)
	if err != nil {
		s.logger.Error("failed to list complaints", "error", err)
		return nil, internal.NewInternalError("Internal server error", err)
	}
	if views == nil {
		views = []View{}
	}
	return views, nil
}

// Update applies the status/priority whitelist. Setting status to Resolved
// stamps resolved_at with the current server time in the same update.
func (s *Service) Update(ctx context.Context, actor auth.Actor, id int64, dto UpdateComplaintDTO) error {
	fields := dto.Fields()
	if len(fields) == 0 {
		return internal.NewValidationError("No valid fields to update", internal.ErrCodeNoValidFields)
	}

	if dto.Status != nil && *dto.Status == StatusResolved {
		fields["resolved_at"] = time.Now()
	}
	fields["updated_at"] = time.Now()

	rows, err := s.repo.Update(id, fields)
	if err != nil {
		s.logger.Error("failed to update complaint", "error", err, "complaint_id", id)
		return internal.NewInternalError("Internal server error", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	var notes []string
	if dto.Status != nil {
		notes = append(notes, fmt.Sprintf("Status changed to %s", *dto.Status))
	}
	if dto.Priority != nil {
		notes = append(notes, fmt.Sprintf("Priority changed to %s", *dto.Priority))
	}
	s.publishAudit(ctx, actor.UserID, "Updated complaint", id, strings.Join(notes, "; "))

	s.logger.Info("complaint updated", "complaint_id", id)
	return nil
}

func (s *Service) publishAudit(ctx context.Context, actorID *int64, action string, resourceID int64, note string) {
	evt := events.NewAuditAction(actorID, action, ResourceType, resourceID, note)
	if err := s.bus.PublishSync(ctx, evt); err != nil {
		s.logger.Error("audit event publish failed", "error", err, "action", action)
	}
}
