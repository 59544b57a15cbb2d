package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type AuditRepository struct {
	DB *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{DB: db}
}

// append-only — ไม่มี update/delete
func (r *AuditRepository) Append(e *entity.AuditLog) error {
	return r.DB.Create(e).Error
}

func (r *AuditRepository) Latest(limit int) ([]entity.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var logs []entity.AuditLog
	err := r.DB.Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
