package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type PickupRepository struct {
	DB *gorm.DB
}

func NewPickupRepository(db *gorm.DB) *PickupRepository {
	return &PickupRepository{DB: db}
}

func (r *PickupRepository) Create(tx *gorm.DB, p *entity.Pickup) error {
	return tx.Create(p).Error
}

func (r *PickupRepository) GetPickup(id uint) (*entity.Pickup, error) {
	var p entity.Pickup
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PickupRepository) GetByDonation(donationID uint) (*entity.Pickup, error) {
	var p entity.Pickup
	if err := r.DB.Where("donation_id = ?", donationID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GET /volunteer/pickups → งานของ volunteer พร้อมข้อมูล donation/donor/items
func (r *PickupRepository) ListForVolunteer(volunteerID uint) ([]entity.Pickup, error) {
	var pickups []entity.Pickup
	err := r.DB.
		Preload("PickupStatus").
		Preload("Donation").
		Preload("Donation.Donor").
		Preload("Donation.Ngo").
		Preload("Donation.Items").
		Where("volunteer_id = ?", volunteerID).
		Order("id DESC").
		Find(&pickups).Error
	return pickups, err
}

// อัปเดตสถานะ (มี guard) — ผูก ownership ไว้ใน WHERE ด้วย
// เปลี่ยนได้เฉพาะ pickup ของ volunteer คนนั้น และสถานะปัจจุบันต้องตรง from
func (r *PickupRepository) UpdateStatusGuard(tx *gorm.DB, pickupID, volunteerID, fromID, toID uint) (int64, error) {
	res := tx.Model(&entity.Pickup{}).
		Where("id = ? AND volunteer_id = ? AND pickup_status_id = ?", pickupID, volunteerID, fromID).
		Update("pickup_status_id", toID)
	return res.RowsAffected, res.Error
}

// เวอร์ชันไม่เช็คเจ้าของ (ใช้ตอน cancel donation ทั้งสาย)
func (r *PickupRepository) UpdateStatusAnyFrom(tx *gorm.DB, pickupID uint, fromIDs []uint, toID uint) (int64, error) {
	res := tx.Model(&entity.Pickup{}).
		Where("id = ? AND pickup_status_id IN ?", pickupID, fromIDs).
		Update("pickup_status_id", toID)
	return res.RowsAffected, res.Error
}

func (r *PickupRepository) GetStatusIDByName(name string) (uint, error) {
	var row struct{ ID uint }
	err := r.DB.Model(&entity.PickupStatus{}).
		Select("id").Where("status_name = ?", name).First(&row).Error
	return row.ID, err
}

func (r *PickupRepository) SetScheduledAt(tx *gorm.DB, pickupID uint, at *time.Time) error {
	return tx.Model(&entity.Pickup{}).Where("id = ?", pickupID).
		Update("scheduled_at", at).Error
}
