package configs

import (
	"foodapp-backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.Customer{}, &entity.CustomerAuth{},
		&entity.State{}, &entity.Address{},
		&entity.Restaurant{}, &entity.Category{}, &entity.Item{},
		&entity.Coupon{}, &entity.PaymentMethod{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
