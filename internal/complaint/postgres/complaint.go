package postgres

import (
	"github.com/yellomango9/it-mgmt-tool/internal/complaint"
	"gorm.io/gorm"
)

// ComplaintRepository implements the complaint.Repository interface using GORM
type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) complaint.Repository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) Create(c *complaint.Complaint) error {
	return r.db.Create(c).Error
}

func (r *ComplaintRepository) List(filters complaint.ListFilters) ([]complaint.View, error) {
	query := r.db.Table("complaints AS c").
		Select("c.*, u.full_name AS user_name").
		Joins("LEFT JOIN users u ON c.user_id = u.id")

	if filters.Status != nil {
		query = query.Where("c.status = ?", *filters.Status)
	}
	if filters.Priority != nil {
		query = query.Where("c.priority = ?", *filters.Priority)
	}
	if filters.UserID != nil {
		query = query.Where("c.user_id = ?", *filters.UserID)
	}

	var views []complaint.View
	err := query.Order("c.created_at DESC").Scan(&views).Error
	return views, err
}

func (r *ComplaintRepository) Update(id int64, fields map[string]interface{}) (int64, error) {
	tx := r.db.Model(&complaint.Complaint{}).Where("id = ?", id).Updates(fields)
	return tx.RowsAffected, tx.Error
}
