// Package auditlog owns the append-only trail of user actions. Entries are
// written through a best-effort recorder that never fails the mutation which
// triggered it, and read back newest first with the actor's display name.
package auditlog

import (
	"time"
)

type LogEntry struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	UserID       int64     `gorm:"column:user_id" json:"user_id"`
	Action       string    `gorm:"column:action" json:"action"`
	ResourceType string    `gorm:"column:resource_type" json:"resource_type"`
	ResourceID   int64     `gorm:"column:resource_id" json:"resource_id"`
	Context      string    `gorm:"column:context" json:"context"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (LogEntry) TableName() string { return "log_entries" }

// EntryView is a LogEntry enriched with the actor's display name for the
// listing endpoint and the activity report.
type EntryView struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type"`
	ResourceID   int64     `json:"resource_id"`
	Context      string    `json:"context"`
	CreatedAt    time.Time `json:"created_at"`
	UserName     *string   `json:"user_name"`
}

type Repository interface {
	Insert(entry *LogEntry) error
	ListWithActor() ([]EntryView, error)
}
