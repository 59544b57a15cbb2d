package entity

import (
	"time"

	"gorm.io/gorm"
)

// ประกาศความต้องการของ NGO ให้ donor เห็น (กระดานขอรับบริจาค)
type NgoPost struct {
	gorm.Model
	NgoID uint `gorm:"not null" json:"ngoId"`
	Ngo   Ngo  `json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`

	// category เดียวกับ donation
	Category       string     `json:"category"`
	QuantityNeeded int        `json:"quantityNeeded"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
}
