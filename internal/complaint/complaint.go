// Package complaint handles user-filed tickets. Complaints are created,
// triaged through status/priority updates, and never deleted; resolving one
// stamps resolved_at alongside the status change.
package complaint

import (
	"time"

	"github.com/yellomango9/it-mgmt-tool/internal"
)

const ResourceType = "complaint"

const (
	StatusOpen     = "Open"
	StatusResolved = "Resolved"

	PriorityMedium = "Medium"
)

type Complaint struct {
	ID          int64      `gorm:"primaryKey" json:"id"`
	UserID      int64      `gorm:"column:user_id" json:"user_id"`
	Subject     string     `gorm:"column:subject" json:"subject"`
	Description string     `gorm:"column:description" json:"description"`
	Status      string     `gorm:"column:status" json:"status"`
	Priority    string     `gorm:"column:priority" json:"priority"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`
	ResolvedAt  *time.Time `gorm:"column:resolved_at" json:"resolved_at"`
}

func (Complaint) TableName() string { return "complaints" }

// View is a Complaint joined with the filing user's display name.
type View struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`
	UserName    *string    `json:"user_name"`
}

type ListFilters struct {
	Status   *string
	Priority *string
	UserID   *int64
}

type Repository interface {
	Create(c *Complaint) error
	List(filters ListFilters) ([]View, error)
	Update(id int64, fields map[string]interface{}) (int64, error)
}

var ErrNotFound = internal.NewNotFoundError("Complaint not found", internal.ErrCodeResourceNotFound)
