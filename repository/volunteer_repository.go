package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type VolunteerRepository struct {
	DB *gorm.DB
}

func NewVolunteerRepository(db *gorm.DB) *VolunteerRepository {
	return &VolunteerRepository{DB: db}
}

func (r *VolunteerRepository) Create(v *entity.Volunteer) error {
	return r.DB.Create(v).Error
}

func (r *VolunteerRepository) FindByID(id uint) (*entity.Volunteer, error) {
	var v entity.Volunteer
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VolunteerRepository) FindByUserID(userID uint) (*entity.Volunteer, error) {
	var v entity.Volunteer
	if err := r.DB.Where("user_id = ?", userID).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// ตรวจว่า volunteer สังกัด NGO นี้จริง (ก่อน assign งาน)
func (r *VolunteerRepository) BelongsToNgo(volunteerID, ngoID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Volunteer{}).
		Where("id = ? AND ngo_id = ?", volunteerID, ngoID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// รายชื่อ volunteer ของ NGO
type VolunteerSummary struct {
	ID       uint   `json:"id"`
	UserID   uint   `json:"userId"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

func (r *VolunteerRepository) ListForNgo(ngoID uint) ([]VolunteerSummary, error) {
	var out []VolunteerSummary
	err := r.DB.Table("volunteers AS v").
		Select("v.id, v.user_id, u.full_name, v.phone, u.email").
		Joins("JOIN users u ON u.id = v.user_id").
		Where("v.ngo_id = ? AND v.deleted_at IS NULL", ngoID).
		Order("v.id DESC").
		Scan(&out).Error
	return out, err
}

// รายการทั้งหมดสำหรับ admin
type AdminVolunteerRow struct {
	ID          uint   `json:"id"`
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	NgoName     string `json:"ngoName"`
	PickupCount int64  `json:"pickupCount"`
}

func (r *VolunteerRepository) ListAll() ([]AdminVolunteerRow, error) {
	var out []AdminVolunteerRow
	err := r.DB.Table("volunteers AS v").
		Select("v.id, u.full_name, v.phone, n.name AS ngo_name, COUNT(p.id) AS pickup_count").
		Joins("JOIN users u ON u.id = v.user_id").
		Joins("JOIN ngos n ON n.id = v.ngo_id").
		Joins("LEFT JOIN pickups p ON p.volunteer_id = v.id AND p.deleted_at IS NULL").
		Where("v.deleted_at IS NULL").
		Group("v.id").
		Order("v.id DESC").
		Scan(&out).Error
	return out, err
}

func (r *VolunteerRepository) Count() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Volunteer{}).Count(&cnt).Error
	return cnt, err
}
