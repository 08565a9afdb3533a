package helper

import (
	"cinema_booking/database"
	"cinema_booking/model"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB mở sqlite in-memory riêng cho từng test, giới hạn 1 connection
// để các goroutine ghi tuần tự qua cùng pool
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.Migrate(db)
	return db
}

func vnd(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

type seatFixture struct {
	db       *gorm.DB
	room     model.Room
	otherRoom model.Room
	showtime model.Showtime
	seats    map[string]model.Seat // theo nhãn "A1"
}

// newSeatFixture phòng 1 hàng A 5 ghế NORMAL + 1 ghế VIP B1,
// suất chiếu 14:00 ngày mai giá gốc 85.000đ
func newSeatFixture(t *testing.T, db *gorm.DB) *seatFixture {
	t.Helper()

	normal := model.SeatType{Type: "NORMAL", PriceModifier: decimal.NewFromFloat(1.0), ExtraFee: vnd(0)}
	require.NoError(t, db.Create(&normal).Error)
	vip := model.SeatType{Type: "VIP", PriceModifier: decimal.NewFromFloat(1.2), ExtraFee: vnd(10000)}
	require.NoError(t, db.Create(&vip).Error)

	cinema := model.Cinema{Name: "Rạp Test", Slug: "rap-test"}
	require.NoError(t, db.Create(&cinema).Error)

	room := model.Room{Name: "Phòng 1", RoomNumber: 1, Type: model.Medium, CinemaId: cinema.ID}
	require.NoError(t, db.Create(&room).Error)
	otherRoom := model.Room{Name: "Phòng 2", RoomNumber: 2, Type: model.Medium, CinemaId: cinema.ID}
	require.NoError(t, db.Create(&otherRoom).Error)

	seats := make(map[string]model.Seat)
	for col := 1; col <= 5; col++ {
		seat := model.Seat{Row: "A", Column: col, RoomId: room.ID, IsAvailable: true, SeatTypeId: normal.ID}
		require.NoError(t, db.Create(&seat).Error)
		seats[seat.Label()] = seat
	}
	b1 := model.Seat{Row: "B", Column: 1, RoomId: room.ID, IsAvailable: true, SeatTypeId: vip.ID}
	require.NoError(t, db.Create(&b1).Error)
	seats["B1"] = b1

	c9 := model.Seat{Row: "C", Column: 9, RoomId: otherRoom.ID, IsAvailable: true, SeatTypeId: normal.ID}
	require.NoError(t, db.Create(&c9).Error)
	seats["C9"] = c9

	movie := model.Movie{Title: "Phim Test", Slug: "phim-test", Duration: 120}
	require.NoError(t, db.Create(&movie).Error)

	start := time.Date(2026, time.March, 5, 14, 0, 0, 0, time.Local)
	showtime := model.Showtime{
		PublicCode: "ST-TEST01",
		StartTime:  start,
		EndTime:    start.Add(2 * time.Hour),
		Price:      vnd(85000),
		Status:     model.ShowtimeAvailable,
		MovieId:    movie.ID,
		RoomId:     room.ID,
	}
	require.NoError(t, db.Create(&showtime).Error)
	showtime.Room = room

	return &seatFixture{db: db, room: room, otherRoom: otherRoom, showtime: showtime, seats: seats}
}

// createBooking tạo đơn với các dòng ghế tương ứng, trạng thái tùy ý
func (f *seatFixture) createBooking(t *testing.T, status string, seatLabels ...string) model.Booking {
	t.Helper()

	customer := model.Customer{
		Email:    fmt.Sprintf("test-%s-%d@test.vn", strings.ToLower(strings.ReplaceAll(t.Name(), "/", "-")), time.Now().UnixNano()),
		Phone:    "0900000000",
		Password: "x",
		IsActive: true,
	}
	require.NoError(t, f.db.Create(&customer).Error)

	booking := model.Booking{
		PublicCode:     GenerateBookingCode(),
		CustomerId:     customer.ID,
		ShowtimeId:     f.showtime.ID,
		SeatAmount:     vnd(int64(len(seatLabels)) * 85000),
		FoodAmount:     vnd(0),
		DiscountAmount: vnd(0),
		TotalAmount:    vnd(int64(len(seatLabels)) * 85000),
		SeatCount:      len(seatLabels),
		Status:         status,
	}
	for _, label := range seatLabels {
		seat, ok := f.seats[label]
		require.True(t, ok, "ghế %s không có trong fixture", label)
		booking.Seats = append(booking.Seats, model.BookingSeat{
			ShowtimeId: f.showtime.ID,
			SeatId:     seat.ID,
			SeatRow:    seat.Row,
			SeatNumber: seat.Column,
			Price:      vnd(85000),
		})
	}
	require.NoError(t, f.db.Create(&booking).Error)
	return booking
}
