package entity

import (
	"time"

	"gorm.io/gorm"
)

// คำขอสิทธิ์ admin — ตัดสินได้ครั้งเดียว (approved/rejected เป็น terminal)
// reject แล้วเก็บแถวไว้ตรวจย้อนหลัง ไม่ลบ
type PendingAdmin struct {
	gorm.Model
	UserID     uint   `gorm:"not null" json:"userId"`
	User       User   `json:"-"`
	Department string `json:"department"`
	Reason     string `json:"reason"`

	// pending / approved / rejected
	Status string `gorm:"not null;default:pending" json:"status"`

	ReviewedByID *uint      `json:"reviewedById,omitempty"`
	ReviewedBy   *User      `gorm:"foreignKey:ReviewedByID" json:"-"`
	ReviewedAt   *time.Time `json:"reviewedAt,omitempty"`
}
