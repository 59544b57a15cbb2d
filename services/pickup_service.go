package services

import (
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type PickupStatusIDs struct {
	Assigned  uint
	EnRoute   uint
	PickedUp  uint
	Delivered uint
	Cancelled uint
}

func (ids PickupStatusIDs) IsTerminal(id uint) bool {
	return id == ids.Delivered || id == ids.Cancelled
}

// PickupService คุม sub-workflow ของการรับของ
// Assigned → En route → Picked Up → Delivered เดินหน้าทีละขั้น ห้ามข้าม/ถอย
type PickupService struct {
	DB            *gorm.DB
	Repo          *repository.PickupRepository
	DonationRepo  *repository.DonationRepository
	NgoRepo       *repository.NgoRepository
	VolunteerRepo *repository.VolunteerRepository
	UserRepo      *repository.UserRepository
	Email         *EmailService

	Status         PickupStatusIDs
	DonationStatus DonationStatusIDs
}

func NewPickupService(
	db *gorm.DB,
	repo *repository.PickupRepository,
	donationRepo *repository.DonationRepository,
	ngoRepo *repository.NgoRepository,
	volunteerRepo *repository.VolunteerRepository,
	userRepo *repository.UserRepository,
	email *EmailService,
	donationStatus DonationStatusIDs,
) *PickupService {
	s := &PickupService{
		DB: db, Repo: repo,
		DonationRepo: donationRepo, NgoRepo: ngoRepo, VolunteerRepo: volunteerRepo,
		UserRepo: userRepo, Email: email,
		DonationStatus: donationStatus,
	}

	if id, err := repo.GetStatusIDByName("Assigned"); err == nil { s.Status.Assigned = id }
	if id, err := repo.GetStatusIDByName("En route"); err == nil { s.Status.EnRoute = id }
	if id, err := repo.GetStatusIDByName("Picked Up"); err == nil { s.Status.PickedUp = id }
	if id, err := repo.GetStatusIDByName("Delivered"); err == nil { s.Status.Delivered = id }
	if id, err := repo.GetStatusIDByName("Cancelled"); err == nil { s.Status.Cancelled = id }

	return s
}

// ----- NGO: สร้าง pickup + assign volunteer -----

type CreatePickupReq struct {
	VolunteerID uint       `json:"volunteerId" binding:"required"`
	ScheduledAt *time.Time `json:"scheduledAt"`
}

// Accepted → Volunteer Assigned + สร้าง Pickup{Assigned} ใน tx เดียว
// volunteer ต้องสังกัด NGO เดียวกับ donation
func (s *PickupService) CreateAndAssign(ngoUserID, donationID uint, req *CreatePickupReq) (*entity.Pickup, error) {
	var p entity.Pickup
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		d, err := s.DonationRepo.GetDonation(donationID)
		if err != nil {
			return ErrNotFound
		}
		ok, err := s.NgoRepo.IsOwnedBy(d.NgoID, ngoUserID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrForbidden
		}
		belongs, err := s.VolunteerRepo.BelongsToNgo(req.VolunteerID, d.NgoID)
		if err != nil {
			return err
		}
		if !belongs {
			return ErrForbidden
		}
		if d.DonationStatusID != s.DonationStatus.Accepted {
			return ErrInvalidTransition
		}

		affected, err := s.DonationRepo.UpdateStatusGuard(tx, d.ID,
			s.DonationStatus.Accepted, s.DonationStatus.VolunteerAssigned)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStaleState
		}

		// donation_id มี unique index — ถ้าเคยมี pickup ที่ถูกยกเลิกไว้
		// ใช้แถวเดิมจ่ายงานใหม่แทนการสร้างซ้อน
		if prev, err := s.Repo.GetByDonation(d.ID); err == nil {
			if prev.PickupStatusID != s.Status.Cancelled {
				return ErrInvalidTransition
			}
			prev.VolunteerID = &req.VolunteerID
			prev.PickupStatusID = s.Status.Assigned
			prev.ScheduledAt = req.ScheduledAt
			if err := tx.Save(prev).Error; err != nil {
				return err
			}
			p = *prev
			return nil
		}

		p = entity.Pickup{
			DonationID:     d.ID,
			VolunteerID:    &req.VolunteerID,
			PickupStatusID: s.Status.Assigned,
			ScheduledAt:    req.ScheduledAt,
		}
		return s.Repo.Create(tx, &p)
	})
	if err != nil {
		return nil, err
	}

	// แจ้ง donor ว่ามีคนมารับแล้ว — best-effort
	s.notifyAssigned(donationID, req.VolunteerID)

	return &p, nil
}

func (s *PickupService) notifyAssigned(donationID, volunteerID uint) {
	d, err := s.DonationRepo.GetDonation(donationID)
	if err != nil {
		return
	}
	donor, err := s.UserRepo.FindByID(d.DonorID)
	if err != nil {
		return
	}
	volName := ""
	if vol, err := s.VolunteerRepo.FindByID(volunteerID); err == nil {
		if vu, err := s.UserRepo.FindByID(vol.UserID); err == nil {
			volName = vu.FullName
		}
	}
	s.Email.SendVolunteerAssigned(donor.Email, donor.FullName, volName)
}

// เลื่อนนัดรับของ — NGO เจ้าของ donation เท่านั้น และงานต้องยังไม่จบ
func (s *PickupService) Reschedule(ngoUserID, pickupID uint, at *time.Time) error {
	p, err := s.Repo.GetPickup(pickupID)
	if err != nil {
		return ErrNotFound
	}
	d, err := s.DonationRepo.GetDonation(p.DonationID)
	if err != nil {
		return ErrNotFound
	}
	ok, err := s.NgoRepo.IsOwnedBy(d.NgoID, ngoUserID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	if s.Status.IsTerminal(p.PickupStatusID) {
		return ErrInvalidTransition
	}
	return s.Repo.SetScheduledAt(s.DB, p.ID, at)
}

// ----- Volunteer: เดินสถานะ -----

// ลำดับถัดไปจากสถานะปัจจุบัน — คืน 0 ถ้าไปต่อไม่ได้
func (s *PickupService) nextStatus(currentID uint) uint {
	switch currentID {
	case s.Status.Assigned:
		return s.Status.EnRoute
	case s.Status.EnRoute:
		return s.Status.PickedUp
	case s.Status.PickedUp:
		return s.Status.Delivered
	default:
		return 0
	}
}

// Advance ขยับไปขั้นถัดไปหนึ่งขั้น — เฉพาะ volunteer เจ้าของงาน
// Picked Up / Delivered สะท้อนเข้า donation แม่ใน tx เดียวกัน
// (pickup Delivered แต่ donation ไม่ Delivered = ข้อมูลขัดกัน ยอมไม่ได้)
func (s *PickupService) Advance(volunteerUserID, pickupID uint) (string, error) {
	var newStatusName string
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		vol, err := s.VolunteerRepo.FindByUserID(volunteerUserID)
		if err != nil {
			return ErrForbidden
		}
		p, err := s.Repo.GetPickup(pickupID)
		if err != nil {
			return ErrNotFound
		}
		if p.VolunteerID == nil || *p.VolunteerID != vol.ID {
			return ErrForbidden
		}

		toID := s.nextStatus(p.PickupStatusID)
		if toID == 0 {
			return ErrInvalidTransition
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, p.ID, vol.ID, p.PickupStatusID, toID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStaleState // กดซ้ำ/แข่งกันจากอีกเครื่อง
		}

		// mirror เข้า donation
		switch toID {
		case s.Status.PickedUp:
			newStatusName = "Picked Up"
			affected, err := s.DonationRepo.UpdateStatusGuard(tx, p.DonationID,
				s.DonationStatus.VolunteerAssigned, s.DonationStatus.PickedUp)
			if err != nil {
				return err
			}
			if affected == 0 {
				// donation ไม่ยอมตาม = ผิด invariant → rollback ทั้งคู่
				return ErrStaleState
			}
		case s.Status.Delivered:
			newStatusName = "Delivered"
			affected, err := s.DonationRepo.UpdateStatusGuard(tx, p.DonationID,
				s.DonationStatus.PickedUp, s.DonationStatus.Delivered)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrStaleState
			}
		case s.Status.EnRoute:
			newStatusName = "En route"
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return newStatusName, nil
}

// volunteer ถอนตัวได้เฉพาะก่อนรับของ (Assigned / En route)
// รับของไปแล้วให้เป็นเรื่อง donor/admin ยกเลิกทั้ง donation
// donation คืนกลับ Accepted ใน tx เดียวกัน → NGO จ่ายงานใหม่ได้
func (s *PickupService) CancelByVolunteer(volunteerUserID, pickupID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		vol, err := s.VolunteerRepo.FindByUserID(volunteerUserID)
		if err != nil {
			return ErrForbidden
		}
		p, err := s.Repo.GetPickup(pickupID)
		if err != nil {
			return ErrNotFound
		}
		if p.VolunteerID == nil || *p.VolunteerID != vol.ID {
			return ErrForbidden
		}
		if p.PickupStatusID != s.Status.Assigned && p.PickupStatusID != s.Status.EnRoute {
			return ErrInvalidTransition
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, p.ID, vol.ID, p.PickupStatusID, s.Status.Cancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStaleState
		}

		if _, err := s.DonationRepo.UpdateStatusGuard(tx, p.DonationID,
			s.DonationStatus.VolunteerAssigned, s.DonationStatus.Accepted); err != nil {
			return err
		}
		return nil
	})
}

// CancelForDonation — ใช้ตอน donor/admin ยกเลิก donation (PickupGuard)
// ยกเลิกเฉพาะ pickup ที่ยังไม่ terminal; ไม่มี pickup ก็เงียบ ๆ ผ่านไป
func (s *PickupService) CancelForDonation(tx *gorm.DB, donationID uint) error {
	p, err := s.Repo.GetByDonation(donationID)
	if err != nil {
		return nil // ไม่มี pickup
	}
	if s.Status.IsTerminal(p.PickupStatusID) {
		return nil
	}
	fromIDs := []uint{s.Status.Assigned, s.Status.EnRoute, s.Status.PickedUp}
	_, err = s.Repo.UpdateStatusAnyFrom(tx, p.ID, fromIDs, s.Status.Cancelled)
	return err
}

// ----- Reads -----

func (s *PickupService) ListForVolunteerUser(volunteerUserID uint) ([]entity.Pickup, error) {
	vol, err := s.VolunteerRepo.FindByUserID(volunteerUserID)
	if err != nil {
		return nil, ErrNotFound // ยังไม่ได้ลงทะเบียนเป็น volunteer กับ NGO ไหน
	}
	return s.Repo.ListForVolunteer(vol.ID)
}
