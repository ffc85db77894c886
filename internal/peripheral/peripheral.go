// Package peripheral tracks attached devices (monitors, printers, docks)
// and their optional assignment to a system.
package peripheral

import (
	"time"

	"github.com/yellomango9/it-mgmt-tool/internal"
)

const ResourceType = "peripheral"

type Peripheral struct {
	ID                 int64     `gorm:"primaryKey" json:"id"`
	Type               string    `gorm:"column:type" json:"type"`
	Model              *string   `gorm:"column:model" json:"model"`
	SerialNumber       string    `gorm:"column:serial_number" json:"serial_number"`
	AssignedToSystemID *int64    `gorm:"column:assigned_to_system_id" json:"assigned_to_system_id"`
	CreatedAt          time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Peripheral) TableName() string { return "peripherals" }

// View is a Peripheral joined with the hostname it is assigned to.
type View struct {
	ID                 int64     `json:"id"`
	Type               string    `json:"type"`
	Model              *string   `json:"model"`
	SerialNumber       string    `json:"serial_number"`
	AssignedToSystemID *int64    `json:"assigned_to_system_id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	AssignedSystem     *string   `json:"assigned_system"`
}

type Repository interface {
	Create(p *Peripheral) error
	List() ([]View, error)
	Update(id int64, fields map[string]interface{}) (int64, error)
	Delete(id int64) (int64, error)
}

var ErrNotFound = internal.NewNotFoundError("Peripheral not found", internal.ErrCodeResourceNotFound)
