package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"backend/entity"
	"backend/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int64

// DB in-memory แยกกันต่อเทส (cache=shared ให้ทุก connection เห็น DB เดียวกัน)
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{}, &entity.Ngo{}, &entity.PendingAdmin{},
		&entity.DonationStatus{}, &entity.Donation{}, &entity.DonationItem{},
		&entity.Volunteer{}, &entity.PickupStatus{}, &entity.Pickup{},
		&entity.NgoPost{}, &entity.AuditLog{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, name := range []string{
		"Requested", "Accepted", "Volunteer Assigned", "Picked Up",
		"Delivered", "Cancelled", "Rejected",
	} {
		db.FirstOrCreate(&entity.DonationStatus{}, entity.DonationStatus{StatusName: name})
	}
	for _, name := range []string{"Assigned", "En route", "Picked Up", "Delivered", "Cancelled"} {
		db.FirstOrCreate(&entity.PickupStatus{}, entity.PickupStatus{StatusName: name})
	}
	return db
}

// ทุก service + repo พร้อมใช้ ต่อ DB เดียวกัน
type testEnv struct {
	db *gorm.DB

	userRepo      *repository.UserRepository
	ngoRepo       *repository.NgoRepository
	adminReqRepo  *repository.PendingAdminRepository
	donationRepo  *repository.DonationRepository
	pickupRepo    *repository.PickupRepository
	volunteerRepo *repository.VolunteerRepository
	auditRepo     *repository.AuditRepository

	auth      *AuthService
	donations *DonationService
	pickups   *PickupService
	approval  *ApprovalService
	ngos      *NgoService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := openTestDB(t)

	e := &testEnv{
		db:            db,
		userRepo:      repository.NewUserRepository(db),
		ngoRepo:       repository.NewNgoRepository(db),
		adminReqRepo:  repository.NewPendingAdminRepository(db),
		donationRepo:  repository.NewDonationRepository(db),
		pickupRepo:    repository.NewPickupRepository(db),
		volunteerRepo: repository.NewVolunteerRepository(db),
		auditRepo:     repository.NewAuditRepository(db),
	}

	email := NewEmailService("", "", "") // ไม่ตั้ง API key = log อย่างเดียว
	e.auth = NewAuthService(db, e.userRepo, e.ngoRepo, e.adminReqRepo, "test-secret", time.Hour)
	e.donations = NewDonationService(db, e.donationRepo, e.ngoRepo, e.userRepo, email)
	e.pickups = NewPickupService(db, e.pickupRepo, e.donationRepo, e.ngoRepo, e.volunteerRepo, e.userRepo, email, e.donations.Status)
	e.approval = NewApprovalService(db, e.ngoRepo, e.adminReqRepo, e.userRepo, e.auditRepo, email)
	e.ngos = NewNgoService(e.ngoRepo)
	return e
}

// ----- fixtures -----

func (e *testEnv) createUser(t *testing.T, email, role string) *entity.User {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	u := &entity.User{Email: email, Password: string(hash), FullName: "User " + email, Role: role}
	if err := e.userRepo.Create(u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func (e *testEnv) createNgo(t *testing.T, owner *entity.User, active bool) *entity.Ngo {
	t.Helper()
	n := &entity.Ngo{Name: "Helping Hands", Active: active, UserID: owner.ID}
	if err := e.db.Create(n).Error; err != nil {
		t.Fatalf("create ngo: %v", err)
	}
	return n
}

func (e *testEnv) createVolunteer(t *testing.T, user *entity.User, ngo *entity.Ngo) *entity.Volunteer {
	t.Helper()
	v := &entity.Volunteer{UserID: user.ID, NgoID: ngo.ID, Phone: "0800000000"}
	if err := e.volunteerRepo.Create(v); err != nil {
		t.Fatalf("create volunteer: %v", err)
	}
	return v
}

func (e *testEnv) createDonation(t *testing.T, donor *entity.User, ngo *entity.Ngo) *CreateDonationRes {
	t.Helper()
	res, err := e.donations.Create(donor.ID, &CreateDonationReq{
		NgoID:         ngo.ID,
		Category:      "books",
		Description:   "old textbooks",
		PickupAddress: "12 Main St",
		Items: []DonationItemIn{
			{ItemName: "Math books", Quantity: 10, Condition: "good"},
		},
	})
	if err != nil {
		t.Fatalf("create donation: %v", err)
	}
	return res
}

func (e *testEnv) donationStatusName(t *testing.T, donationID uint) string {
	t.Helper()
	var d entity.Donation
	if err := e.db.Preload("DonationStatus").First(&d, donationID).Error; err != nil {
		t.Fatalf("load donation: %v", err)
	}
	return d.DonationStatus.StatusName
}

func (e *testEnv) pickupStatusName(t *testing.T, pickupID uint) string {
	t.Helper()
	var p entity.Pickup
	if err := e.db.Preload("PickupStatus").First(&p, pickupID).Error; err != nil {
		t.Fatalf("load pickup: %v", err)
	}
	return p.PickupStatus.StatusName
}
