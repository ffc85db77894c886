package postgres

import (
	"github.com/yellomango9/it-mgmt-tool/internal/auditlog"
	"gorm.io/gorm"
)

// AuditLogRepository implements auditlog.Repository using GORM.
type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) auditlog.Repository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Insert(entry *auditlog.LogEntry) error {
	return r.db.Create(entry).Error
}

func (r *AuditLogRepository) ListWithActor() ([]auditlog.EntryView, error) {
	var views []auditlog.EntryView
	err := r.db.Table("log_entries AS l").
		Select("l.id, l.user_id, l.action, l.resource_type, l.resource_id, l.context, l.created_at, u.full_name AS user_name").
		Joins("LEFT JOIN users u ON l.user_id = u.id").
		Order("l.created_at DESC").
		Scan(&views).Error
	return views, err
}
