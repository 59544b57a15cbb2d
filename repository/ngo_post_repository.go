package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type NgoPostRepository struct {
	DB *gorm.DB
}

func NewNgoPostRepository(db *gorm.DB) *NgoPostRepository {
	return &NgoPostRepository{DB: db}
}

func (r *NgoPostRepository) Create(p *entity.NgoPost) error {
	return r.DB.Create(p).Error
}

func (r *NgoPostRepository) ListForNgo(ngoID uint) ([]entity.NgoPost, error) {
	var posts []entity.NgoPost
	err := r.DB.Where("ngo_id = ?", ngoID).Order("id DESC").Find(&posts).Error
	return posts, err
}

// กระดานประกาศฝั่ง donor — เฉพาะ NGO ที่ active และโพสต์ยังไม่หมดอายุ
func (r *NgoPostRepository) ListPublic(now time.Time, limit int) ([]entity.NgoPost, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var posts []entity.NgoPost
	err := r.DB.Preload("Ngo").
		Joins("JOIN ngos ON ngos.id = ngo_posts.ngo_id AND ngos.active = ? AND ngos.deleted_at IS NULL", true).
		Where("ngo_posts.expires_at IS NULL OR ngo_posts.expires_at > ?", now).
		Order("ngo_posts.id DESC").Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *NgoPostRepository) Delete(ngoID, postID uint) (int64, error) {
	res := r.DB.Where("ngo_id = ?", ngoID).Delete(&entity.NgoPost{}, postID)
	return res.RowsAffected, res.Error
}
