package services

import (
	"time"

	"backend/entity"
	"backend/repository"
)

// NgoPostService — บอร์ดประกาศของที่ NGO ต้องการ ให้ donor เปิดดูได้
type NgoPostService struct {
	Repo    *repository.NgoPostRepository
	NgoRepo *repository.NgoRepository
}

func NewNgoPostService(repo *repository.NgoPostRepository, ngoRepo *repository.NgoRepository) *NgoPostService {
	return &NgoPostService{Repo: repo, NgoRepo: ngoRepo}
}

type CreatePostReq struct {
	Title          string     `json:"title" binding:"required"`
	Description    string     `json:"description"`
	Category       string     `json:"category" binding:"omitempty,oneof=stationary books clothes electronics money"`
	QuantityNeeded int        `json:"quantityNeeded" binding:"omitempty,min=1"`
	ExpiresAt      *time.Time `json:"expiresAt"`
}

func (s *NgoPostService) Create(ngoUserID uint, req *CreatePostReq) (*entity.NgoPost, error) {
	ngo, err := s.NgoRepo.FindByUserID(ngoUserID)
	if err != nil {
		return nil, ErrForbidden
	}
	p := entity.NgoPost{
		NgoID:          ngo.ID,
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		QuantityNeeded: req.QuantityNeeded,
		ExpiresAt:      req.ExpiresAt,
	}
	if err := s.Repo.Create(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *NgoPostService) ListForNgoUser(ngoUserID uint) ([]entity.NgoPost, error) {
	ngo, err := s.NgoRepo.FindByUserID(ngoUserID)
	if err != nil {
		return nil, ErrForbidden
	}
	return s.Repo.ListForNgo(ngo.ID)
}

// ประกาศสาธารณะ: เฉพาะ NGO ที่ active และยังไม่หมดอายุ
func (s *NgoPostService) ListPublic(limit int) ([]entity.NgoPost, error) {
	return s.Repo.ListPublic(time.Now(), limit)
}

func (s *NgoPostService) Delete(ngoUserID, postID uint) error {
	ngo, err := s.NgoRepo.FindByUserID(ngoUserID)
	if err != nil {
		return ErrForbidden
	}
	affected, err := s.Repo.Delete(ngo.ID, postID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
