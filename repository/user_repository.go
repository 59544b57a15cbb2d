package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

// อัปเดต role ใน tx (ใช้ตอน admin อนุมัติคำขอ — ต้อง commit พร้อมสถานะคำขอ)
func (r *UserRepository) UpdateRole(tx *gorm.DB, id uint, role string) error {
	res := tx.Model(&entity.User{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// รายชื่อ donor สำหรับหน้า admin
type DonorSummary struct {
	ID            uint   `json:"id"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	City          string `json:"city"`
	DonationCount int64  `json:"donationCount"`
}

func (r *UserRepository) ListDonors() ([]DonorSummary, error) {
	var out []DonorSummary
	err := r.DB.Table("users AS u").
		Select("u.id, u.full_name, u.email, u.phone, u.city, COUNT(d.id) AS donation_count").
		Joins("LEFT JOIN donations d ON d.donor_id = u.id AND d.deleted_at IS NULL").
		Where("u.role = ? AND u.deleted_at IS NULL", "donor").
		Group("u.id").
		Order("u.id DESC").
		Scan(&out).Error
	return out, err
}
