package entity

import (
	"gorm.io/gorm"
)

type PickupStatus struct {
	gorm.Model
	StatusName string `gorm:"uniqueIndex;not null" json:"statusName"`

	Pickups []Pickup `json:"-"`
}
