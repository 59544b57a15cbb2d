package entity

import (
	"time"
)

// บันทึกการกระทำของ admin (append-only ไม่มีแก้/ลบ)
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`

	ActorID uint `gorm:"not null;index" json:"actorId"`
	Actor   User `gorm:"foreignKey:ActorID" json:"-"`

	// เช่น NGO_APPROVED, ADMIN_REJECTED
	Action      string `gorm:"type:varchar(64);not null;index" json:"action"`
	TargetTable string `gorm:"type:varchar(64)" json:"targetTable"`
	TargetID    uint   `gorm:"index" json:"targetId"`

	// รายละเอียดเพิ่มเติมเป็น JSON
	Details string `gorm:"type:text" json:"details,omitempty"`
}
