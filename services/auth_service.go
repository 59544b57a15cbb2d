package services

import (
	"strings"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService จัดการ business logic ของการ login/register
type AuthService struct {
	DB        *gorm.DB
	userRepo  *repository.UserRepository
	ngoRepo   *repository.NgoRepository
	adminRepo *repository.PendingAdminRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	ngoRepo *repository.NgoRepository,
	adminRepo *repository.PendingAdminRepository,
	secret string,
	ttl time.Duration,
) *AuthService {
	return &AuthService{
		DB:        db,
		userRepo:  userRepo,
		ngoRepo:   ngoRepo,
		adminRepo: adminRepo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Role     string // donor / ngo / volunteer / admin

	Address string
	City    string
	State   string
	Pincode string

	// เฉพาะ role=ngo
	NgoName             string
	NgoDescription      string
	RegistrationDocPath string

	// เฉพาะ role=admin
	Department string
	Reason     string
}

// Register สมัครตาม role:
// - donor/volunteer สมัครแล้วใช้งานได้เลย
// - ngo สร้างองค์กรคู่กัน (active=false รอ admin อนุมัติ)
// - admin ยังไม่ได้ role ทันที — สร้างคำขอ pending ไว้ role ขึ้นเป็น admin ตอนอนุมัติเท่านั้น
func (s *AuthService) Register(in RegisterInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	// ตรวจซ้ำ email
	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := in.Role
	switch role {
	case "ngo", "volunteer", "donor":
		// ใช้ตามที่เลือก
	case "admin":
		role = "donor" // สิทธิ์ admin ต้องรออนุมัติ
	default:
		role = "donor"
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		FullName: strings.TrimSpace(in.FullName),
		Phone:    strings.TrimSpace(in.Phone),
		Address:  in.Address,
		City:     in.City,
		State:    in.State,
		Pincode:  in.Pincode,
		Role:     role,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		if in.Role == "ngo" {
			ngo := &entity.Ngo{
				Name:                in.NgoName,
				Description:         in.NgoDescription,
				Address:             in.Address,
				City:                in.City,
				State:               in.State,
				Pincode:             in.Pincode,
				Active:              false, // รออนุมัติ
				RegistrationDocPath: in.RegistrationDocPath,
				UserID:              user.ID,
			}
			if err := s.ngoRepo.Create(tx, ngo); err != nil {
				return err
			}
		}

		if in.Role == "admin" {
			req := &entity.PendingAdmin{
				UserID:     user.ID,
				Department: in.Department,
				Reason:     in.Reason,
				Status:     "pending",
			}
			if err := s.adminRepo.Create(tx, req); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login ตรวจสอบ user + สร้าง JWT
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrForbidden
	}

	// เทียบรหัสผ่าน
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrForbidden
	}

	// ออก token (role ใน claim เป็น hint เฉย ๆ — middleware อ่านสดจาก DB)
	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

// UpdateProfile อัปเดตข้อมูลผู้ใช้ (เฉพาะ field ติดต่อ/ที่อยู่ — role ห้ามแก้เอง)
func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	allowed := map[string]bool{
		"full_name": true, "phone": true, "address": true,
		"city": true, "state": true, "pincode": true,
	}
	clean := map[string]any{}
	for k, v := range updates {
		if allowed[k] {
			clean[k] = v
		}
	}
	if len(clean) > 0 {
		if err := s.userRepo.Update(userID, clean); err != nil {
			return nil, err
		}
	}
	return s.userRepo.FindByID(userID)
}
