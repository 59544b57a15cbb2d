package services

import (
	"backend/entity"
	"backend/repository"
)

// AdminService — ตัวเลขหน้า dashboard + รายการรวมทุก NGO
type AdminService struct {
	NgoRepo       *repository.NgoRepository
	DonationRepo  *repository.DonationRepository
	VolunteerRepo *repository.VolunteerRepository
	UserRepo      *repository.UserRepository
	AdminRepo     *repository.PendingAdminRepository
}

func NewAdminService(
	ngoRepo *repository.NgoRepository,
	donationRepo *repository.DonationRepository,
	volunteerRepo *repository.VolunteerRepository,
	userRepo *repository.UserRepository,
	adminRepo *repository.PendingAdminRepository,
) *AdminService {
	return &AdminService{
		NgoRepo: ngoRepo, DonationRepo: donationRepo,
		VolunteerRepo: volunteerRepo, UserRepo: userRepo, AdminRepo: adminRepo,
	}
}

type DashboardStats struct {
	Ngos          int64 `json:"ngos"`
	ActiveNgos    int64 `json:"activeNgos"`
	Donations     int64 `json:"donations"`
	Volunteers    int64 `json:"volunteers"`
	PendingNgos   int64 `json:"pendingNgos"`
	PendingAdmins int64 `json:"pendingAdmins"`
}

func (s *AdminService) Stats() (*DashboardStats, error) {
	st := &DashboardStats{}
	var err error
	if st.Ngos, err = s.NgoRepo.Count(nil); err != nil {
		return nil, err
	}
	active := true
	if st.ActiveNgos, err = s.NgoRepo.Count(&active); err != nil {
		return nil, err
	}
	st.PendingNgos = st.Ngos - st.ActiveNgos
	if st.Donations, err = s.DonationRepo.Count(); err != nil {
		return nil, err
	}
	if st.Volunteers, err = s.VolunteerRepo.Count(); err != nil {
		return nil, err
	}
	pending, err := s.AdminRepo.FindByStatus("pending")
	if err != nil {
		return nil, err
	}
	st.PendingAdmins = int64(len(pending))
	return st, nil
}

func (s *AdminService) ListNgos(active *bool) ([]entity.Ngo, error) {
	return s.NgoRepo.List(active)
}

func (s *AdminService) ListDonations(statusName, category string, limit int) ([]repository.AdminDonationRow, error) {
	var statusID *uint
	if statusName != "" {
		if id, err := s.DonationRepo.GetStatusIDByName(statusName); err == nil {
			statusID = &id
		}
	}
	return s.DonationRepo.ListAll(statusID, category, limit)
}

func (s *AdminService) ListVolunteers() ([]repository.AdminVolunteerRow, error) {
	return s.VolunteerRepo.ListAll()
}

func (s *AdminService) ListDonors() ([]repository.DonorSummary, error) {
	return s.UserRepo.ListDonors()
}

// สลับ active ตรง ๆ (คนละเส้นกับ approve — ไม่แตะ ApprovedBy/At)
func (s *AdminService) ToggleNgo(ngoID uint) (bool, error) {
	ngo, err := s.NgoRepo.FindByID(ngoID)
	if err != nil {
		return false, ErrNotFound
	}
	next := !ngo.Active
	if err := s.NgoRepo.SetActive(ngoID, next); err != nil {
		return false, err
	}
	return next, nil
}
