package entity

import (
	"time"

	"gorm.io/gorm"
)

// งานรับของ 1:1 กับ donation ที่ถูก accept แล้ว
// volunteer ที่ถูก assign เท่านั้นที่ขยับสถานะได้
type Pickup struct {
	gorm.Model
	DonationID uint     `gorm:"uniqueIndex;not null" json:"donationId"`
	Donation   Donation `json:"-"`

	VolunteerID *uint      `json:"volunteerId,omitempty"`
	Volunteer   *Volunteer `json:"-"`

	PickupStatusID uint         `json:"pickupStatusId"`
	PickupStatus   PickupStatus `json:"pickupStatus"`

	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
}
