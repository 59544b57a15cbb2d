package storage

import (
	"io"
)

// Store เก็บไฟล์แบบ opaque — core จำแค่ path ที่คืนมา ไม่สนเนื้อไฟล์
// ตอนนี้มี disk เดียว เผื่อสลับไป S3/GCS ทีหลัง
type Store interface {
	// Save เขียนไฟล์ลง prefix ที่กำหนด คืน path สำหรับอ้างอิง/โหลดกลับ
	Save(prefix, filename string, r io.Reader) (string, error)
	Open(path string) (io.ReadCloser, error)
	Delete(path string) error
}
