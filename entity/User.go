package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // ปลอดภัย
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`

	// พิกัด (เก็บไว้เฉย ๆ ยังไม่ได้ใช้คำนวณเส้นทาง)
	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`

	// donor / ngo / admin / volunteer
	Role string `gorm:"not null;default:donor" json:"role"`

	// Relations — preload เฉพาะตอนจำเป็น
	Ngo              *Ngo           `gorm:"foreignKey:UserID" json:"-"`
	Donations        []Donation     `gorm:"foreignKey:DonorID" json:"-"`
	VolunteerProfile *Volunteer     `gorm:"foreignKey:UserID" json:"-"`
	AdminRequests    []PendingAdmin `gorm:"foreignKey:UserID" json:"-"`
}
