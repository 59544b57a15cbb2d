package services

import (
	"fmt"
	"log"
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

// ApprovalService — admin ตัดสิน NGO application และ admin request
// ทุกการตัดสินเขียน audit log (best-effort หลัง commit)
type ApprovalService struct {
	DB        *gorm.DB
	NgoRepo   *repository.NgoRepository
	AdminRepo *repository.PendingAdminRepository
	UserRepo  *repository.UserRepository
	AuditRepo *repository.AuditRepository
	Email     *EmailService
}

func NewApprovalService(
	db *gorm.DB,
	ngoRepo *repository.NgoRepository,
	adminRepo *repository.PendingAdminRepository,
	userRepo *repository.UserRepository,
	auditRepo *repository.AuditRepository,
	email *EmailService,
) *ApprovalService {
	return &ApprovalService{
		DB: db, NgoRepo: ngoRepo, AdminRepo: adminRepo,
		UserRepo: userRepo, AuditRepo: auditRepo, Email: email,
	}
}

// audit เขียนนอก tx — พลาดก็แค่ log ไม่ rollback การตัดสิน
func (s *ApprovalService) audit(actorID uint, action, table string, targetID uint, details string) {
	rec := entity.AuditLog{
		ActorID:     actorID,
		Action:      action,
		TargetTable: table,
		TargetID:    targetID,
		Details:     details,
	}
	if err := s.AuditRepo.Append(&rec); err != nil {
		log.Printf("⚠️ audit append failed (%s #%d): %v", action, targetID, err)
	}
}

// ----- NGO approval -----

// ApproveNgo: active=false → true พร้อมประทับ approver/เวลา
// guard กันสอง admin อนุมัติซ้อน — คนหลังเจอ ErrNotPending
func (s *ApprovalService) ApproveNgo(adminID, ngoID uint) error {
	ngo, err := s.NgoRepo.FindByID(ngoID)
	if err != nil {
		return ErrNotFound
	}
	if ngo.Active {
		return ErrNotPending
	}

	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.NgoRepo.ApproveGuard(tx, ngoID, adminID, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotPending
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.audit(adminID, "NGO_APPROVED", "ngos", ngoID, fmt.Sprintf("ngo %q approved", ngo.Name))

	if u, err := s.UserRepo.FindByID(ngo.UserID); err == nil {
		s.Email.SendNgoApproved(u.Email, ngo.Name)
	}
	return nil
}

// RejectNgo: ลบ record ทิ้ง (สมัครใหม่ได้) — ต่างจาก approve ที่เก็บไว้พร้อม stamp
func (s *ApprovalService) RejectNgo(adminID, ngoID uint, reason string) error {
	ngo, err := s.NgoRepo.FindByID(ngoID)
	if err != nil {
		return ErrNotFound
	}
	if ngo.Active {
		return ErrNotPending
	}
	email := ""
	if u, err := s.UserRepo.FindByID(ngo.UserID); err == nil {
		email = u.Email
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.NgoRepo.Delete(tx, ngoID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotPending
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.audit(adminID, "NGO_REJECTED", "ngos", ngoID,
		fmt.Sprintf("ngo %q rejected: %s", ngo.Name, reason))

	if email != "" {
		s.Email.SendNgoRejected(email, ngo.Name, reason)
	}
	return nil
}

// ----- Admin approval -----

// ApproveAdmin: เปลี่ยน pending→approved และยก role เป็น admin ใน tx เดียว
// สองอย่างนี้แยกกันไม่ได้ — role ขึ้นแล้ว request ต้องปิดด้วย
func (s *ApprovalService) ApproveAdmin(adminID, requestID uint) error {
	req, err := s.AdminRepo.FindByID(requestID)
	if err != nil {
		return ErrNotFound
	}
	if req.Status != "pending" {
		return ErrNotPending
	}

	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.AdminRepo.ReviewGuard(tx, requestID, "approved", adminID, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotPending
		}
		return s.UserRepo.UpdateRole(tx, req.UserID, "admin")
	})
	if err != nil {
		return err
	}

	s.audit(adminID, "ADMIN_APPROVED", "pending_admins", requestID,
		fmt.Sprintf("user #%d promoted to admin", req.UserID))

	if u, err := s.UserRepo.FindByID(req.UserID); err == nil {
		s.Email.SendAdminApproved(u.Email, u.FullName)
	}
	return nil
}

// RejectAdmin: pending→rejected, role เดิมไม่แตะ
func (s *ApprovalService) RejectAdmin(adminID, requestID uint, reason string) error {
	req, err := s.AdminRepo.FindByID(requestID)
	if err != nil {
		return ErrNotFound
	}
	if req.Status != "pending" {
		return ErrNotPending
	}

	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.AdminRepo.ReviewGuard(tx, requestID, "rejected", adminID, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotPending
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.audit(adminID, "ADMIN_REJECTED", "pending_admins", requestID,
		fmt.Sprintf("admin request by user #%d rejected: %s", req.UserID, reason))

	if u, err := s.UserRepo.FindByID(req.UserID); err == nil {
		s.Email.SendAdminRejected(u.Email, u.FullName, reason)
	}
	return nil
}

// ----- Pending lists (admin console) -----

func (s *ApprovalService) PendingNgos() ([]entity.Ngo, error) {
	inactive := false
	return s.NgoRepo.List(&inactive)
}

func (s *ApprovalService) PendingAdminRequests() ([]entity.PendingAdmin, error) {
	return s.AdminRepo.FindByStatus("pending")
}

func (s *ApprovalService) AuditTrail(limit int) ([]entity.AuditLog, error) {
	return s.AuditRepo.Latest(limit)
}
