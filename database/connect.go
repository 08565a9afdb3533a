package database

import (
	"cinema_booking/config"
	"cinema_booking/model"
	"fmt"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	Migrate(DB)
	fmt.Println("Database Migrated")

	// khởi tạo dữ liệu
	SeedData(DB)
}

// Migrate tách riêng để test dùng lại với sqlite in-memory
func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&model.Customer{},
		&model.Cinema{},
		&model.Room{},
		&model.Movie{},
		&model.Holiday{},
		&model.SeatType{},
		&model.Seat{},
		&model.Showtime{},
		&model.PricingRule{},
		&model.FoodItem{},
		&model.Promotion{},
		&model.Booking{},
		&model.BookingSeat{},
		&model.BookingItem{},
		&model.Payment{},
	)
}
