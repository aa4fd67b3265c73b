package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table this package
// owns. The persistence models stay private to the package; callers migrate
// through here.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&hotelModel{},
		&roomTypeModel{},
		&roomRateModel{},
		&availabilityBlockModel{},
		&bookingModel{},
		&reviewModel{},
		&translationModel{},
	)
}
