package entity

import (
	"gorm.io/gorm"
)

type DonationStatus struct {
	gorm.Model
	StatusName string `gorm:"uniqueIndex;not null" json:"statusName"`

	Donations []Donation `json:"-"`
}
