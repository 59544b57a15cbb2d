package services

import (
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type DonationStatusIDs struct {
	Requested         uint
	Accepted          uint
	VolunteerAssigned uint
	PickedUp          uint
	Delivered         uint
	Cancelled         uint
	Rejected          uint
}

// สถานะ terminal = จบแล้ว ห้ามขยับต่อ
func (ids DonationStatusIDs) IsTerminal(id uint) bool {
	return id == ids.Delivered || id == ids.Cancelled || id == ids.Rejected
}

type DonationService struct {
	DB       *gorm.DB
	Repo     *repository.DonationRepository
	NgoRepo  *repository.NgoRepository
	UserRepo *repository.UserRepository
	Email    *EmailService

	Status DonationStatusIDs
}

func NewDonationService(
	db *gorm.DB,
	repo *repository.DonationRepository,
	ngoRepo *repository.NgoRepository,
	userRepo *repository.UserRepository,
	email *EmailService,
) *DonationService {
	s := &DonationService{DB: db, Repo: repo, NgoRepo: ngoRepo, UserRepo: userRepo, Email: email}

	if id, err := repo.GetStatusIDByName("Requested"); err == nil { s.Status.Requested = id }
	if id, err := repo.GetStatusIDByName("Accepted"); err == nil { s.Status.Accepted = id }
	if id, err := repo.GetStatusIDByName("Volunteer Assigned"); err == nil { s.Status.VolunteerAssigned = id }
	if id, err := repo.GetStatusIDByName("Picked Up"); err == nil { s.Status.PickedUp = id }
	if id, err := repo.GetStatusIDByName("Delivered"); err == nil { s.Status.Delivered = id }
	if id, err := repo.GetStatusIDByName("Cancelled"); err == nil { s.Status.Cancelled = id }
	if id, err := repo.GetStatusIDByName("Rejected"); err == nil { s.Status.Rejected = id }

	return s
}

// ----- DTOs from Controller -----

type DonationItemIn struct {
	ItemName  string `json:"itemName" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Condition string `json:"condition" binding:"omitempty,oneof=excellent good fair poor"`
	ImagePath string `json:"imagePath"`
}

type CreateDonationReq struct {
	NgoID               uint             `json:"ngoId" binding:"required"`
	Category            string           `json:"category" binding:"required,oneof=stationary books clothes electronics money"`
	Description         string           `json:"description"`
	Amount              *float64         `json:"amount"`
	PickupAddress       string           `json:"pickupAddress" binding:"required"`
	PreferredPickupDate *time.Time       `json:"preferredPickupDate"`
	Items               []DonationItemIn `json:"items"`
}

type CreateDonationRes struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

// ----- Create -----
// donation + items สร้างใน transaction เดียว — ไม่มี donation ครึ่ง ๆ กลาง ๆ
func (s *DonationService) Create(donorID uint, req *CreateDonationReq) (*CreateDonationRes, error) {
	// เป้าหมายต้องเป็น NGO ที่อนุมัติแล้วเท่านั้น
	active, err := s.NgoRepo.IsActive(req.NgoID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, ErrInactiveNgo
	}

	if req.Category == "money" {
		if req.Amount == nil || *req.Amount <= 0 {
			return nil, ErrInvalidAmount
		}
	} else {
		if len(req.Items) == 0 {
			return nil, ErrItemsRequired
		}
	}

	d := entity.Donation{
		DonorID:             donorID,
		NgoID:               req.NgoID,
		Category:            req.Category,
		Description:         req.Description,
		PickupAddress:       req.PickupAddress,
		PreferredPickupDate: req.PreferredPickupDate,
		DonationStatusID:    s.Status.Requested,
	}
	if req.Category == "money" {
		d.Amount = req.Amount
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateDonation(tx, &d); err != nil {
			return err
		}
		if req.Category == "money" {
			return nil
		}
		for _, it := range req.Items {
			cond := it.Condition
			if cond == "" {
				cond = "good"
			}
			item := entity.DonationItem{
				DonationID: d.ID,
				ItemName:   it.ItemName,
				Quantity:   it.Quantity,
				Condition:  cond,
				ImagePath:  it.ImagePath,
			}
			if err := s.Repo.CreateItem(tx, &item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateDonationRes{ID: d.ID, Status: "Requested"}, nil
}

// ----- Reads -----

func (s *DonationService) ListForDonor(donorID uint, limit int) ([]repository.DonationSummary, error) {
	return s.Repo.ListForDonor(donorID, limit)
}

func (s *DonationService) DetailForDonor(donorID, donationID uint) (*entity.Donation, error) {
	d, err := s.Repo.GetForDonor(donorID, donationID)
	if err != nil {
		return nil, ErrNotFound
	}
	return d, nil
}

// รายการฝั่ง NGO — เช็คก่อนว่า user เป็นเจ้าของ NGO นั้น
func (s *DonationService) ListForNgoUser(userID uint, statusName string, limit int) ([]repository.NgoDonationSummary, error) {
	ngo, err := s.NgoRepo.FindByUserID(userID)
	if err != nil {
		return nil, ErrForbidden
	}
	var statusID *uint
	if statusName != "" {
		if id, err := s.Repo.GetStatusIDByName(statusName); err == nil {
			statusID = &id
		}
	}
	return s.Repo.ListForNgo(ngo.ID, statusID, limit)
}
