package services

import (
	"strings"

	"backend/entity"
	"backend/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// VolunteerService — NGO เปิดบัญชี volunteer ให้คนของตัวเอง
type VolunteerService struct {
	DB       *gorm.DB
	Repo     *repository.VolunteerRepository
	UserRepo *repository.UserRepository
	NgoRepo  *repository.NgoRepository
}

func NewVolunteerService(
	db *gorm.DB,
	repo *repository.VolunteerRepository,
	userRepo *repository.UserRepository,
	ngoRepo *repository.NgoRepository,
) *VolunteerService {
	return &VolunteerService{DB: db, Repo: repo, UserRepo: userRepo, NgoRepo: ngoRepo}
}

type ProvisionVolunteerReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone"`
}

// สร้าง user (role volunteer) + volunteer ผูก NGO ใน tx เดียว
func (s *VolunteerService) Provision(ngoUserID uint, req *ProvisionVolunteerReq) (*entity.Volunteer, error) {
	ngo, err := s.NgoRepo.FindByUserID(ngoUserID)
	if err != nil {
		return nil, ErrForbidden
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	n, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var vol entity.Volunteer
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		user := entity.User{
			Email:    email,
			Password: string(hashed),
			FullName: req.FullName,
			Phone:    req.Phone,
			Role:     "volunteer",
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		vol = entity.Volunteer{
			UserID: user.ID,
			NgoID:  ngo.ID,
			Phone:  req.Phone,
		}
		return tx.Create(&vol).Error
	})
	if err != nil {
		return nil, err
	}
	return &vol, nil
}

func (s *VolunteerService) ListForNgoUser(ngoUserID uint) ([]repository.VolunteerSummary, error) {
	ngo, err := s.NgoRepo.FindByUserID(ngoUserID)
	if err != nil {
		return nil, ErrForbidden
	}
	return s.Repo.ListForNgo(ngo.ID)
}
