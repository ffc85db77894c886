// Package system tracks the organization's computer inventory: one row per
// machine with hardware facts, network placement, and an optional owner.
package system

import (
	"time"

	"github.com/yellomango9/it-mgmt-tool/internal"
)

const ResourceType = "system"

type System struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	Hostname        string    `gorm:"column:hostname" json:"hostname"`
	OSName          string    `gorm:"column:os_name" json:"os_name"`
	OSVersion       *string   `gorm:"column:os_version" json:"os_version"`
	RAMSizeGB       *float64  `gorm:"column:ram_size_gb" json:"ram_size_gb"`
	CPUModel        *string   `gorm:"column:cpu_model" json:"cpu_model"`
	StorageSizeGB   *float64  `gorm:"column:storage_size_gb" json:"storage_size_gb"`
	IPAddress       string    `gorm:"column:ip_address" json:"ip_address"`
	MACAddress      *string   `gorm:"column:mac_address" json:"mac_address"`
	AntivirusStatus *string   `gorm:"column:antivirus_status" json:"antivirus_status"`
	UserID          *int64    `gorm:"column:user_id" json:"user_id"`
	NetworkID       *int64    `gorm:"column:network_id" json:"network_id"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (System) TableName() string { return "systems" }

// View is a System joined with its owner, department, and network names.
type View struct {
	ID              int64     `json:"id"`
	Hostname        string    `json:"hostname"`
	OSName          string    `json:"os_name"`
	OSVersion       *string   `json:"os_version"`
	RAMSizeGB       *float64  `json:"ram_size_gb"`
	CPUModel        *string   `json:"cpu_model"`
	StorageSizeGB   *float64  `json:"storage_size_gb"`
	IPAddress       string    `json:"ip_address"`
	MACAddress      *string   `json:"mac_address"`
	AntivirusStatus *string   `json:"antivirus_status"`
	UserID          *int64    `json:"user_id"`
	NetworkID       *int64    `json:"network_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	UserName        *string   `json:"user_name"`
	Department      *string   `json:"department"`
	Network         *string   `json:"network"`
}

// ListFilters are the equality filters the listing accepts. A nil filter
// adds no constraint. DepartmentID applies through the owning user.
type ListFilters struct {
	DepartmentID *int64
	NetworkID    *int64
}

type Repository interface {
	Create(sys *System) error
	List(filters ListFilters) ([]View, error)
	Update(id int64, fields map[string]interface{}) (int64, error)
	Delete(id int64) (int64, error)
}

var ErrNotFound = internal.NewNotFoundError("System not found", internal.ErrCodeResourceNotFound)
