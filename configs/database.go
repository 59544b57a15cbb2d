package configs

import (
	"backend/entity"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "mysql":
		database, err = gorm.Open(mysql.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{},
		&entity.Ngo{}, &entity.PendingAdmin{},
		&entity.DonationStatus{}, &entity.Donation{}, &entity.DonationItem{},
		&entity.Volunteer{},
		&entity.PickupStatus{}, &entity.Pickup{},
		&entity.NgoPost{},
		&entity.AuditLog{},
	)
}
