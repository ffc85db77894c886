package postgres

import (
	"github.com/yellomango9/it-mgmt-tool/internal/system"
	"gorm.io/gorm"
)

// SystemRepository implements the system.Repository interface using GORM
type SystemRepository struct {
	db *gorm.DB
}

func NewSystemRepository(db *gorm.DB) system.Repository {
	return &SystemRepository{db: db}
}

func (r *SystemRepository) Create(sys *system.System) error {
	return r.db.Create(sys).Error
}

// List joins owner, department and network display names. Filters are
// conjunctive; the department filter applies through the owning user.
// Ordering is by hostname ascending, a deliberate UI choice.
func (r *SystemRepository) List(filters system.ListFilters) ([]system.View, error) {
	query := r.db.Table("systems AS s").
		Select("s.*, u.full_name AS user_name, d.name AS department, n.name AS network").
		Joins("LEFT JOIN users u ON s.user_id = u.id").
		Joins("LEFT JOIN departments d ON u.department_id = d.id").
		Joins("LEFT JOIN networks n ON s.network_id = n.id")

	if filters.DepartmentID != nil {
		query = query.Where("u.department_id = ?", *filters.DepartmentID)
	}
	if filters.NetworkID != nil {
		query = query.Where("s.network_id = ?", *filters.NetworkID)
	}

	var views []system.View
	err := query.Order("s.hostname ASC").Scan(&views).Error
	return views, err
}

func (r *SystemRepository) Update(id int64, fields map[string]interface{}) (int64, error) {
	tx := r.db.Model(&system.System{}).Where("id = ?", id).Updates(fields)
	return tx.RowsAffected, tx.Error
}

func (r *SystemRepository) Delete(id int64) (int64, error) {
	tx := r.db.Where("id = ?", id).Delete(&system.System{})
	return tx.RowsAffected, tx.Error
}
