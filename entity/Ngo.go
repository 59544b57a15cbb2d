package entity

import (
	"time"

	"gorm.io/gorm"
)

// องค์กรรับบริจาค สมัครแล้วต้องรอ admin อนุมัติ (active=false จนกว่าจะผ่าน)
type Ngo struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`

	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`

	// ยังไม่อนุมัติ = ห้ามโผล่ในรายการฝั่ง donor และห้ามรับ donation ใหม่
	Active bool `gorm:"not null;default:false" json:"active"`

	ApprovedByID *uint      `json:"approvedById,omitempty"`
	ApprovedBy   *User      `gorm:"foreignKey:ApprovedByID" json:"-"`
	ApprovedAt   *time.Time `json:"approvedAt,omitempty"`

	// เอกสารจดทะเบียน (path ใน blob store)
	RegistrationDocPath string `json:"registrationDocPath,omitempty"`

	UserID uint `gorm:"uniqueIndex" json:"userId"` // ผู้ติดต่อหลัก 1:1
	User   User `json:"-"`

	Volunteers []Volunteer `json:"-"`
	Donations  []Donation  `gorm:"foreignKey:NgoID" json:"-"`
	Posts      []NgoPost   `json:"-"`
}
