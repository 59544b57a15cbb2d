package entity

import (
	"time"

	"gorm.io/gorm"
)

type Donation struct {
	gorm.Model
	DonorID uint `gorm:"not null" json:"donorId"`
	Donor   User `gorm:"foreignKey:DonorID" json:"-"` // preload เฉพาะตอนต้องการข้อมูลผู้บริจาค

	NgoID uint `gorm:"not null" json:"ngoId"`
	Ngo   Ngo  `json:"-"` // preload เมื่อจำเป็น

	// stationary / books / clothes / electronics / money
	Category    string `gorm:"not null" json:"category"`
	Description string `json:"description"`

	// ใช้เฉพาะ category = money
	Amount *float64 `json:"amount,omitempty"`

	PickupAddress       string     `gorm:"not null" json:"pickupAddress"`
	PreferredPickupDate *time.Time `json:"preferredPickupDate,omitempty"`

	DonationStatusID uint           `json:"donationStatusId"`
	DonationStatus   DonationStatus `json:"donationStatus"`

	// preload แค่ตอน detail
	Items  []DonationItem `gorm:"foreignKey:DonationID" json:"-"`
	Pickup *Pickup        `gorm:"foreignKey:DonationID" json:"-"`
}
