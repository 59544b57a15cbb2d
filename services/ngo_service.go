package services

import (
	"backend/entity"
	"backend/repository"
)

// NgoService — ฝั่ง donor เห็นเฉพาะ NGO ที่ active แล้วเท่านั้น
type NgoService struct {
	Repo *repository.NgoRepository
}

func NewNgoService(repo *repository.NgoRepository) *NgoService {
	return &NgoService{Repo: repo}
}

func (s *NgoService) ListPublic() ([]entity.Ngo, error) {
	return s.Repo.ListActive()
}

func (s *NgoService) Get(id uint) (*entity.Ngo, error) {
	ngo, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return ngo, nil
}

func (s *NgoService) ProfileForUser(userID uint) (*entity.Ngo, error) {
	ngo, err := s.Repo.FindByUserID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return ngo, nil
}

// แนบเอกสารจดทะเบียน (path จาก /uploads)
func (s *NgoService) AttachRegistrationDoc(userID uint, path string) error {
	ngo, err := s.Repo.FindByUserID(userID)
	if err != nil {
		return ErrNotFound
	}
	return s.Repo.SetRegistrationDoc(ngo.ID, path)
}
