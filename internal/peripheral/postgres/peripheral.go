package postgres

import (
	"github.com/yellomango9/it-mgmt-tool/internal/peripheral"
	"gorm.io/gorm"
)

// PeripheralRepository implements the peripheral.Repository interface using GORM
type PeripheralRepository struct {
	db *gorm.DB
}

func NewPeripheralRepository(db *gorm.DB) peripheral.Repository {
	return &PeripheralRepository{db: db}
}

func (r *PeripheralRepository) Create(p *peripheral.Peripheral) error {
	return r.db.Create(p).Error
}

func (r *PeripheralRepository) List() ([]peripheral.View, error) {
	var views []peripheral.View
	err := r.db.Table("peripherals AS p").
		Select("p.*, s.hostname AS assigned_system").
		Joins("LEFT JOIN systems s ON p.assigned_to_system_id = s.id").
		Order("p.created_at DESC").
		Scan(&views).Error
	return views, err
}

func (r *PeripheralRepository) Update(id int64, fields map[string]interface{}) (int64, error) {
	tx := r.db.Model(&peripheral.Peripheral{}).Where("id = ?", id).Updates(fields)
	return tx.RowsAffected, tx.Error
}

func (r *PeripheralRepository) Delete(id int64) (int64, error) {
	tx := r.db.Where("id = ?", id).Delete(&peripheral.Peripheral{})
	return tx.RowsAffected, tx.Error
}
