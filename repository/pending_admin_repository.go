package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type PendingAdminRepository struct {
	DB *gorm.DB
}

func NewPendingAdminRepository(db *gorm.DB) *PendingAdminRepository {
	return &PendingAdminRepository{DB: db}
}

func (r *PendingAdminRepository) Create(tx *gorm.DB, req *entity.PendingAdmin) error {
	return tx.Create(req).Error
}

func (r *PendingAdminRepository) FindByID(id uint) (*entity.PendingAdmin, error) {
	var req entity.PendingAdmin
	if err := r.DB.Preload("User").First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *PendingAdminRepository) FindByStatus(status string) ([]entity.PendingAdmin, error) {
	var reqs []entity.PendingAdmin
	err := r.DB.Preload("User").
		Where("status = ?", status).
		Order("id DESC").
		Find(&reqs).Error
	return reqs, err
}

// เปลี่ยนสถานะเฉพาะตอนยัง pending เท่านั้น (terminal แล้วห้ามรีวิวซ้ำ)
func (r *PendingAdminRepository) ReviewGuard(tx *gorm.DB, id uint, status string, reviewerID uint, now time.Time) (int64, error) {
	res := tx.Model(&entity.PendingAdmin{}).
		Where("id = ? AND status = ?", id, "pending").
		Updates(map[string]any{
			"status":         status,
			"reviewed_by_id": reviewerID,
			"reviewed_at":    now,
		})
	return res.RowsAffected, res.Error
}
