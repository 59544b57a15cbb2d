package services

import "errors"

// error กลางของชั้น service — controller เอาไป map เป็น HTTP status
var (
	ErrNotFound = errors.New("not found")

	// role/ownership ไม่ผ่าน
	ErrForbidden = errors.New("forbidden")

	// ขอ transition ที่ไปจากสถานะปัจจุบันไม่ได้
	ErrInvalidTransition = errors.New("invalid transition")

	// แพ้ race — สถานะถูกคนอื่นเปลี่ยนไปก่อนแล้ว client ต้อง refetch เอง
	// (ห้าม auto-retry เพราะความหมายทางธุรกิจอาจเปลี่ยนไปแล้ว เช่น โดน reject ตัดหน้า)
	ErrStaleState = errors.New("stale state")

	ErrNotPending  = errors.New("not pending")
	ErrInactiveNgo = errors.New("ngo is not active")
	ErrEmailTaken  = errors.New("email already registered")

	ErrInvalidAmount = errors.New("amount is required for money donations")
	ErrItemsRequired = errors.New("items are required for non-money donations")
)
