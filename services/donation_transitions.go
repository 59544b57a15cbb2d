// services/donation_transitions.go
package services

import (
	"gorm.io/gorm"
)

// ทุก transition ใช้ guard update: WHERE เช็คสถานะ from ปัจจุบัน
// - อ่านมาแล้วสถานะไม่ใช่ from → InvalidTransition (ขอผิดตั้งแต่แรก)
// - อ่านมาตรง from แต่ guard update โดน 0 แถว → StaleState (แพ้ race ให้คนอื่น)
// ไม่มี partial write — ทั้งก้อนอยู่ใน transaction เดียว

// ----- NGO actions -----

// Requested → Accepted (เจ้าของ NGO ปลายทางเท่านั้น)
// email แจ้ง donor เป็น best-effort — ส่งไม่ถึงก็ไม่ rollback
func (s *DonationService) NgoAccept(ngoUserID, donationID uint) error {
	if err := s.transitionAsNgo(ngoUserID, donationID, s.Status.Requested, s.Status.Accepted); err != nil {
		return err
	}
	if d, err := s.Repo.GetDonation(donationID); err == nil {
		if donor, err := s.UserRepo.FindByID(d.DonorID); err == nil {
			ngoName := ""
			if n, err := s.NgoRepo.FindByID(d.NgoID); err == nil {
				ngoName = n.Name
			}
			s.Email.SendDonationAccepted(donor.Email, donor.FullName, ngoName)
		}
	}
	return nil
}

// Requested → Rejected (terminal)
func (s *DonationService) NgoReject(ngoUserID, donationID uint) error {
	return s.transitionAsNgo(ngoUserID, donationID, s.Status.Requested, s.Status.Rejected)
}

func (s *DonationService) transitionAsNgo(ngoUserID, donationID, fromID, toID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		d, err := s.Repo.GetDonation(donationID)
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
		if d.DonationStatusID != fromID {
			return ErrInvalidTransition
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, d.ID, fromID, toID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStaleState
		}
		return nil
	})
}

// ----- Donor / Admin -----

// ยกเลิกได้ทุกสถานะที่ยังไม่ terminal — donor ยกเลิกได้เฉพาะของตัวเอง
// ถ้ามี pickup ค้างอยู่ก็ยกเลิกตามกันใน tx เดียว (กัน pickup ลอยค้าง)
func (s *DonationService) Cancel(actorID uint, actorRole string, donationID uint, pickups PickupGuard) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		d, err := s.Repo.GetDonation(donationID)
		if err != nil {
			return ErrNotFound
		}
		if actorRole != "admin" && d.DonorID != actorID {
			return ErrForbidden
		}
		if s.Status.IsTerminal(d.DonationStatusID) {
			return ErrInvalidTransition
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, d.ID, d.DonationStatusID, s.Status.Cancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStaleState
		}

		if pickups != nil {
			if err := pickups.CancelForDonation(tx, d.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

// PickupGuard ให้ DonationService สั่งยกเลิก pickup ของ donation ได้
// โดยไม่ต้องถือ PickupService ทั้งตัว (เลี่ยง import วน)
type PickupGuard interface {
	CancelForDonation(tx *gorm.DB, donationID uint) error
}
