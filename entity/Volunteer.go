package entity

import (
	"gorm.io/gorm"
)

// อาสาสมัคร ผูกกับ NGO เดียว (NGO เป็นคนเพิ่มเข้าระบบ)
type Volunteer struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"` // preload เฉพาะเวลาต้องการชื่อ/เบอร์

	NgoID uint `gorm:"not null" json:"ngoId"`
	Ngo   Ngo  `json:"-"`

	Phone string `json:"phone"`

	Pickups []Pickup `gorm:"foreignKey:VolunteerID" json:"-"` // preload เฉพาะ endpoint ประวัติงาน
}
