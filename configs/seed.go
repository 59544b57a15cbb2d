package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin ครั้งแรก
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("⚠️ skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("ℹ️ admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		FullName: "Platform Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// Seed ค่า lookup/status เริ่มต้น
func SeedLookups() error {
	db := DB()

	// Donation — ลำดับการ seed กำหนด id (Requested ต้องเป็นตัวแรก)
	db.FirstOrCreate(&entity.DonationStatus{}, entity.DonationStatus{StatusName: "Requested"})
	db.FirstOrCreate(&entity.DonationStatus{}, entity.DonationStatus{StatusName: "Accepted"})
	db.FirstOrCreate(&entity.DonationStatus{}, entity.DonationStatus{StatusName: "Volunteer Assigned"})
	db.FirstOrCreate(&entity.DonationStatus{}, entity.DonationStatus{StatusName: "Picked Up"})
	db.FirstOrCreate(&entity.DonationStatus{}, entity.DonationStatus{StatusName: "Delivered"})
	db.FirstOrCreate(&entity.DonationStatus{}, entity.DonationStatus{StatusName: "Cancelled"})
	db.FirstOrCreate(&entity.DonationStatus{}, entity.DonationStatus{StatusName: "Rejected"})

	// Pickup
	db.FirstOrCreate(&entity.PickupStatus{}, entity.PickupStatus{StatusName: "Assigned"})
	db.FirstOrCreate(&entity.PickupStatus{}, entity.PickupStatus{StatusName: "En route"})
	db.FirstOrCreate(&entity.PickupStatus{}, entity.PickupStatus{StatusName: "Picked Up"})
	db.FirstOrCreate(&entity.PickupStatus{}, entity.PickupStatus{StatusName: "Delivered"})
	db.FirstOrCreate(&entity.PickupStatus{}, entity.PickupStatus{StatusName: "Cancelled"})

	log.Println("✅ Lookup tables seeded")
	return nil
}
