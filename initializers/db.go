package initializers

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/eshopke/eshop-api/models"
)

func ConnectToDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func SyncDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.OrderItem{},
		&models.Order{},
	)
}
