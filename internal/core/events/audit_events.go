package events

import (
	"time"

	"github.com/google/uuid"
)

const AuditActionEventType = "audit.action"

// AuditActionPayload describes a state-changing action for the audit trail.
// ActorID may be nil; the recorder drops unattributed actions.
type AuditActionPayload struct {
	ActorID      *int64
	Action       string
	ResourceType string
	ResourceID   int64
	Context      string
}

type AuditActionEvent struct {
	id        string
	timestamp time.Time
	Data      AuditActionPayload
}

// NewAuditAction builds the event published after a successful mutation
// commit. Resource services publish it; the audit recorder consumes it.
func NewAuditAction(actorID *int64, action, resourceType string, resourceID int64, contextNote string) AuditActionEvent {
	return AuditActionEvent{
		id:        uuid.NewString(),
		timestamp: time.Now(),
		Data: AuditActionPayload{
			ActorID:      actorID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			Context:      contextNote,
		},
	}
}

func (e AuditActionEvent) EventType() string     { return AuditActionEventType }
func (e AuditActionEvent) EventID() string       { return e.id }
func (e AuditActionEvent) OccurredAt() time.Time { return e.timestamp }
func (e AuditActionEvent) Payload() interface{}  { return e.Data }
