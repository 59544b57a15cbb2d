package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type DonationRepository struct {
	DB *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{DB: db}
}

// ---------------- Donations (CRUD หลัก) ----------------

// POST /donations → สร้าง donation
func (r *DonationRepository) CreateDonation(tx *gorm.DB, d *entity.Donation) error {
	return tx.Create(d).Error
}

func (r *DonationRepository) CreateItem(tx *gorm.DB, it *entity.DonationItem) error {
	return tx.Create(it).Error
}

// ใช้ทั่วไป เช่น admin/ngo
func (r *DonationRepository) GetDonation(id uint) (*entity.Donation, error) {
	var d entity.Donation
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// รายละเอียดของ donor เอง (กันอ่านข้ามคน)
func (r *DonationRepository) GetForDonor(donorID, id uint) (*entity.Donation, error) {
	var d entity.Donation
	err := r.DB.Preload("DonationStatus").Preload("Items").Preload("Ngo").
		Where("id = ? AND donor_id = ?", id, donorID).First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GET /donations (donor) → รายการของตัวเอง
// ดึงข้อมูลตามนี้ แล้วส่งไป
type DonationSummary struct {
	ID         uint      `json:"id"`
	NgoID      uint      `json:"ngoId"`
	NgoName    string    `json:"ngoName"`
	Category   string    `json:"category"`
	StatusName string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (r *DonationRepository) ListForDonor(donorID uint, limit int) ([]DonationSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []DonationSummary
	err := r.DB.Table("donations AS d").
		Select("d.id, d.ngo_id, n.name AS ngo_name, d.category, s.status_name, d.created_at").
		Joins("JOIN ngos n ON n.id = d.ngo_id").
		Joins("JOIN donation_statuses s ON s.id = d.donation_status_id").
		Where("d.donor_id = ? AND d.deleted_at IS NULL", donorID).
		Order("d.id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// GET /ngo/donations → รายการของ NGO (filter ตามสถานะได้)
type NgoDonationSummary struct {
	ID            uint      `json:"id"`
	DonorID       uint      `json:"donorId"`
	DonorName     string    `json:"donorName"`
	DonorPhone    string    `json:"donorPhone"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	PickupAddress string    `json:"pickupAddress"`
	StatusName    string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r *DonationRepository) ListForNgo(ngoID uint, statusID *uint, limit int) ([]NgoDonationSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	db := r.DB.Table("donations AS d").
		Select("d.id, d.donor_id, u.full_name AS donor_name, u.phone AS donor_phone, d.category, d.description, d.pickup_address, s.status_name, d.created_at").
		Joins("JOIN users u ON u.id = d.donor_id").
		Joins("JOIN donation_statuses s ON s.id = d.donation_status_id").
		Where("d.ngo_id = ? AND d.deleted_at IS NULL", ngoID)
	if statusID != nil && *statusID != 0 {
		db = db.Where("d.donation_status_id = ?", *statusID)
	}
	var out []NgoDonationSummary
	err := db.Order("d.id DESC").Limit(limit).Scan(&out).Error
	return out, err
}

// GET /admin/donations → ทั้งระบบ (filter status/category)
type AdminDonationRow struct {
	ID         uint      `json:"id"`
	DonorName  string    `json:"donorName"`
	NgoName    string    `json:"ngoName"`
	Category   string    `json:"category"`
	StatusName string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (r *DonationRepository) ListAll(statusID *uint, category string, limit int) ([]AdminDonationRow, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	db := r.DB.Table("donations AS d").
		Select("d.id, u.full_name AS donor_name, n.name AS ngo_name, d.category, s.status_name, d.created_at").
		Joins("JOIN users u ON u.id = d.donor_id").
		Joins("JOIN ngos n ON n.id = d.ngo_id").
		Joins("JOIN donation_statuses s ON s.id = d.donation_status_id").
		Where("d.deleted_at IS NULL")
	if statusID != nil && *statusID != 0 {
		db = db.Where("d.donation_status_id = ?", *statusID)
	}
	if category != "" {
		db = db.Where("d.category = ?", category)
	}
	var out []AdminDonationRow
	err := db.Order("d.id DESC").Limit(limit).Scan(&out).Error
	return out, err
}

func (r *DonationRepository) GetItems(donationID uint) ([]entity.DonationItem, error) {
	var items []entity.DonationItem
	err := r.DB.Where("donation_id = ?", donationID).Find(&items).Error
	return items, err
}

// ---------------- Status transitions ----------------

// PATCH ... /status → อัปเดตสถานะ (มี guard)
// rows affected = 0 แปลว่าสถานะปัจจุบันไม่ตรง from แล้ว (แพ้ race หรือ transition ผิด)
func (r *DonationRepository) UpdateStatusGuard(tx *gorm.DB, donationID, fromID, toID uint) (int64, error) {
	res := tx.Model(&entity.Donation{}).
		Where("id = ? AND donation_status_id = ?", donationID, fromID).
		Update("donation_status_id", toID)
	return res.RowsAffected, res.Error
}

// ---------------- Validations / Helpers ----------------

// หาค่า status id จากชื่อ
func (r *DonationRepository) GetStatusIDByName(name string) (uint, error) {
	var row struct{ ID uint }
	err := r.DB.Model(&entity.DonationStatus{}).
		Select("id").Where("status_name = ?", name).First(&row).Error
	return row.ID, err
}

func (r *DonationRepository) Count() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Donation{}).Count(&cnt).Error
	return cnt, err
}
