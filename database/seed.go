package database

import (
	"cinema_booking/model"
	"cinema_booking/utils"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func vnd(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456cn"), 10)
	hashPassword := string(bytes)
	if err != nil {
		hashPassword = "123456cn"
	}
	customers := []model.Customer{
		{Email: "khach@cinemahub.vn", Phone: "0900000001", Password: hashPassword, UserName: "khachdemo"},
	}
	for _, customer := range customers {
		if err := db.Where(model.Customer{Email: customer.Email}).FirstOrCreate(&customer).Error; err != nil {
			log.Println("failed to seed data for customer:", customer.Email, "error:", err)
		}
	}

	seatTypes := []model.SeatType{
		{Type: "NORMAL", PriceModifier: decimal.NewFromFloat(1.0), ExtraFee: vnd(0)},
		{Type: "VIP", PriceModifier: decimal.NewFromFloat(1.2), ExtraFee: vnd(10000)},
		{Type: "COUPLE", PriceModifier: decimal.NewFromFloat(2.0), ExtraFee: vnd(20000)},
		{Type: "DISABLED", PriceModifier: decimal.NewFromFloat(0.8), ExtraFee: vnd(0)},
	}
	for _, st := range seatTypes {
		if err := db.Where(model.SeatType{Type: st.Type}).FirstOrCreate(&st).Error; err != nil {
			log.Println("failed to seed seat type:", st.Type, "error:", err)
		}
	}

	holidays := []model.Holiday{
		{Name: "Tết Dương lịch", Date: parseDate("2026-01-01"), IsRecurring: true},
		{Name: "Ngày Giải phóng miền Nam", Date: parseDate("2026-04-30"), IsRecurring: true},
		{Name: "Quốc tế Lao động", Date: parseDate("2026-05-01"), IsRecurring: true},
		{Name: "Quốc khánh", Date: parseDate("2026-09-02"), IsRecurring: true},
	}
	for _, h := range holidays {
		if err := db.Where(model.Holiday{Name: h.Name}).FirstOrCreate(&h).Error; err != nil {
			log.Println("failed to seed holiday:", h.Name, "error:", err)
		}
	}

	imax := model.IMAX
	rules := []model.PricingRule{
		{Name: "Ngày lễ", DayTypes: []string{"holiday"}, Price: vnd(110000), Priority: 90, Active: true},
		{Name: "Cuối tuần", DayTypes: []string{"weekend"}, Price: vnd(100000), Priority: 80, Active: true},
		{Name: "Giờ vàng", DayTypes: []string{model.DayTypeAll}, TimeFrom: utils.Ptr("18:00"), TimeTo: utils.Ptr("22:00"), Price: vnd(95000), Priority: 70, Active: true},
		{Name: "Phòng IMAX", RoomType: &imax, DayTypes: []string{model.DayTypeAll}, Price: vnd(120000), Priority: 60, Active: true},
	}
	for _, r := range rules {
		if err := db.Where(model.PricingRule{Name: r.Name}).FirstOrCreate(&r).Error; err != nil {
			log.Println("failed to seed pricing rule:", r.Name, "error:", err)
		}
	}

	foods := []model.FoodItem{
		{Name: "Bắp rang bơ", Category: "FOOD", Price: vnd(45000), IsAvailable: true},
		{Name: "Nước ngọt lớn", Category: "DRINK", Price: vnd(30000), IsAvailable: true},
		{Name: "Combo bắp nước", Category: "COMBO", Price: vnd(65000), IsAvailable: true},
	}
	for _, f := range foods {
		if err := db.Where(model.FoodItem{Name: f.Name}).FirstOrCreate(&f).Error; err != nil {
			log.Println("failed to seed food item:", f.Name, "error:", err)
		}
	}

	promotions := []model.Promotion{
		{
			Code: "GIAM10", Name: "Giảm 10%", DiscountType: "percentage",
			DiscountValue: decimal.NewFromInt(10), MinPurchase: vnd(100000),
			StartDate: parseDate("2026-01-01"), EndDate: parseDate("2026-12-31"), Status: "active",
		},
		{
			Code: "HE50K", Name: "Hè giảm 50K", DiscountType: "fixed",
			DiscountValue: vnd(50000), MinPurchase: vnd(150000),
			StartDate: parseDate("2026-06-01"), EndDate: parseDate("2026-08-31"), Status: "active",
		},
	}
	for _, p := range promotions {
		if err := db.Where(model.Promotion{Code: p.Code}).FirstOrCreate(&p).Error; err != nil {
			log.Println("failed to seed promotion:", p.Code, "error:", err)
		}
	}

	seedDemoCinema(db)
}

// seedDemoCinema tạo rạp + phòng + lưới ghế + phim + suất chiếu mẫu
func seedDemoCinema(db *gorm.DB) {
	cinema := model.Cinema{Name: "CinemaHub Quận 1", Address: "123 Lê Lợi, Quận 1, TP.HCM"}
	cinema.Slug = slug.Make(cinema.Name)
	if err := db.Where(model.Cinema{Slug: cinema.Slug}).FirstOrCreate(&cinema).Error; err != nil {
		log.Println("failed to seed cinema:", err)
		return
	}

	room := model.Room{Name: "Phòng 1", RoomNumber: 1, Type: model.Medium, Status: "available", CinemaId: cinema.ID}
	if err := db.Where(model.Room{CinemaId: cinema.ID, RoomNumber: 1}).FirstOrCreate(&room).Error; err != nil {
		log.Println("failed to seed room:", err)
		return
	}

	var seatCount int64
	db.Model(&model.Seat{}).Where("room_id = ?", room.ID).Count(&seatCount)
	if seatCount == 0 {
		var normal, vip model.SeatType
		db.Where("type = ?", "NORMAL").First(&normal)
		db.Where("type = ?", "VIP").First(&vip)

		var seats []model.Seat
		for _, row := range []string{"A", "B", "C", "D", "E"} {
			for col := 1; col <= 10; col++ {
				seatTypeId := normal.ID
				if row == "D" || row == "E" {
					seatTypeId = vip.ID // hàng cuối là ghế VIP
				}
				seats = append(seats, model.Seat{
					Row: row, Column: col, RoomId: room.ID,
					IsAvailable: true, SeatTypeId: seatTypeId,
				})
			}
		}
		if err := db.Create(&seats).Error; err != nil {
			log.Println("failed to seed seats:", err)
		}
	}

	movie := model.Movie{Title: "Mắt Biếc Trở Lại", Genre: "Tình cảm", Duration: 117, AgeRestriction: "T13", StatusMovie: "NOW_SHOWING"}
	movie.Slug = slug.Make(movie.Title)
	if err := db.Where(model.Movie{Slug: movie.Slug}).FirstOrCreate(&movie).Error; err != nil {
		log.Println("failed to seed movie:", err)
		return
	}

	var showtimeCount int64
	db.Model(&model.Showtime{}).Where("room_id = ?", room.ID).Count(&showtimeCount)
	if showtimeCount == 0 {
		loc := time.FixedZone("ICT", 7*3600)
		base := time.Now().In(loc).AddDate(0, 0, 1)
		for _, hour := range []int{14, 17, 20} {
			start := time.Date(base.Year(), base.Month(), base.Day(), hour, 0, 0, 0, loc)
			st := model.Showtime{
				PublicCode: fmt.Sprintf("ST-%s", uuid.New().String()[:8]),
				StartTime:  start,
				EndTime:    start.Add(time.Duration(movie.Duration) * time.Minute),
				Price:      decimal.NewFromInt(85000),
				Status:     model.ShowtimeAvailable,
				Format:     "2D",
				MovieId:    movie.ID,
				RoomId:     room.ID,
			}
			if err := db.Create(&st).Error; err != nil {
				log.Println("failed to seed showtime:", err)
			}
		}
	}
}
