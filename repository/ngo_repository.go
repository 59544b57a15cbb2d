package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type NgoRepository struct {
	DB *gorm.DB
}

func NewNgoRepository(db *gorm.DB) *NgoRepository {
	return &NgoRepository{DB: db}
}

func (r *NgoRepository) Create(tx *gorm.DB, n *entity.Ngo) error {
	return tx.Create(n).Error
}

func (r *NgoRepository) FindByID(id uint) (*entity.Ngo, error) {
	var n entity.Ngo
	if err := r.DB.First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NgoRepository) FindByUserID(userID uint) (*entity.Ngo, error) {
	var n entity.Ngo
	if err := r.DB.Where("user_id = ?", userID).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// เช็คว่า user คนนี้เป็นเจ้าของ NGO นี้มั้ย
func (r *NgoRepository) IsOwnedBy(ngoID, userID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Ngo{}).
		Where("id = ? AND user_id = ?", ngoID, userID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// NGO ที่ active แล้วเท่านั้น — ใช้ฝั่ง donor เลือกเป้าหมายบริจาค
func (r *NgoRepository) ListActive() ([]entity.Ngo, error) {
	var ngos []entity.Ngo
	err := r.DB.Where("active = ?", true).Order("name ASC").Find(&ngos).Error
	return ngos, err
}

// รายการทั้งหมดสำหรับ admin (filter active ได้)
func (r *NgoRepository) List(active *bool) ([]entity.Ngo, error) {
	var ngos []entity.Ngo
	db := r.DB.Preload("User").Order("id DESC")
	if active != nil {
		db = db.Where("active = ?", *active)
	}
	err := db.Find(&ngos).Error
	return ngos, err
}

// เช็คว่าเป้าหมายบริจาคยัง active อยู่จริง
func (r *NgoRepository) IsActive(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Ngo{}).
		Where("id = ? AND active = ?", id, true).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// อนุมัติ: active=true + บันทึกผู้อนุมัติ/เวลา — guard ไว้เฉพาะตัวที่ยังไม่ active
func (r *NgoRepository) ApproveGuard(tx *gorm.DB, id, approverID uint, now time.Time) (int64, error) {
	res := tx.Model(&entity.Ngo{}).
		Where("id = ? AND active = ?", id, false).
		Updates(map[string]any{
			"active":         true,
			"approved_by_id": approverID,
			"approved_at":    now,
		})
	return res.RowsAffected, res.Error
}

// ปฏิเสธ = ลบแถวทิ้งจริง (Unscoped) — soft delete จะค้าง unique index ที่
// user_id ทำให้สมัครใหม่ไม่ได้ — นโยบายต่างจาก pending admin ที่เก็บแถวไว้
func (r *NgoRepository) Delete(tx *gorm.DB, id uint) (int64, error) {
	res := tx.Unscoped().Where("active = ?", false).Delete(&entity.Ngo{}, id)
	return res.RowsAffected, res.Error
}

func (r *NgoRepository) SetActive(id uint, active bool) error {
	return r.DB.Model(&entity.Ngo{}).Where("id = ?", id).Update("active", active).Error
}

func (r *NgoRepository) SetRegistrationDoc(id uint, path string) error {
	return r.DB.Model(&entity.Ngo{}).Where("id = ?", id).
		Update("registration_doc_path", path).Error
}

func (r *NgoRepository) Count(active *bool) (int64, error) {
	var cnt int64
	db := r.DB.Model(&entity.Ngo{})
	if active != nil {
		db = db.Where("active = ?", *active)
	}
	err := db.Count(&cnt).Error
	return cnt, err
}
