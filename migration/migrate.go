package migration

import (
	"fms-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Booking{},
		&models.BookingCargoLine{},
		&models.ShippingRequest{},
		&models.TransactionHistory{},
		&models.FileLog{},
		&models.IntegrationLog{},
	)
}
