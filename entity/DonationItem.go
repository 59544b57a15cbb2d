package entity

import (
	"gorm.io/gorm"
)

// รายการของใน donation (ไม่ใช่เงิน) — สร้างพร้อม donation แล้วไม่แก้อีก
type DonationItem struct {
	gorm.Model
	DonationID uint     `gorm:"not null" json:"donationId"`
	Donation   Donation `json:"-"`

	ItemName string `gorm:"not null" json:"itemName"`
	Quantity int    `gorm:"not null" json:"quantity"`

	// excellent / good / fair / poor
	Condition string `gorm:"not null;default:good" json:"condition"`

	// รูปของ (path ใน blob store)
	ImagePath string `json:"imagePath,omitempty"`
}
