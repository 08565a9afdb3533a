package handler_test

import (
	"bytes"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/router"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func vnd(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

type env struct {
	app      *fiber.App
	db       *gorm.DB
	clock    *clockwork.FakeClock
	token    string
	customer model.Customer
	showtime model.Showtime
	seats    map[string]model.Seat
	foods    map[string]model.FoodItem
}

// setupEnv dựng app + sqlite in-memory + fixture chuẩn:
// suất chiếu thứ Tư 14:00 giá gốc 85.000đ, đồng hồ giả đứng ở 10:00 cùng ngày,
// không có quy tắc giá nào nên ghế NORMAL đúng 85.000đ
func setupEnv(t *testing.T) *env {
	t.Helper()

	t.Setenv("JWT_SECRET", "test-secret")
	oldSecret := helper.JwtSecret
	helper.JwtSecret = []byte("test-secret")
	t.Cleanup(func() { helper.JwtSecret = oldSecret })

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.Migrate(db)
	oldDB := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = oldDB })

	base := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.Local) // thứ Tư
	clock := clockwork.NewFakeClockAt(base)
	oldClock := helper.Clock
	helper.Clock = clock
	t.Cleanup(func() { helper.Clock = oldClock })

	e := &env{
		db:    db,
		clock: clock,
		seats: make(map[string]model.Seat),
		foods: make(map[string]model.FoodItem),
	}

	e.customer = model.Customer{Email: "khach@test.vn", Phone: "0900000001", Password: "x", UserName: "khachtest", IsActive: true}
	require.NoError(t, db.Create(&e.customer).Error)

	normal := model.SeatType{Type: "NORMAL", PriceModifier: decimal.NewFromFloat(1.0), ExtraFee: vnd(0)}
	require.NoError(t, db.Create(&normal).Error)
	vip := model.SeatType{Type: "VIP", PriceModifier: decimal.NewFromFloat(1.2), ExtraFee: vnd(10000)}
	require.NoError(t, db.Create(&vip).Error)

	cinema := model.Cinema{Name: "CinemaHub Test", Slug: "cinemahub-test", Address: "1 Test"}
	require.NoError(t, db.Create(&cinema).Error)
	room := model.Room{Name: "Phòng 1", RoomNumber: 1, Type: model.Medium, CinemaId: cinema.ID}
	require.NoError(t, db.Create(&room).Error)

	for col := 1; col <= 5; col++ {
		seat := model.Seat{Row: "A", Column: col, RoomId: room.ID, IsAvailable: true, SeatTypeId: normal.ID}
		require.NoError(t, db.Create(&seat).Error)
		seat.SeatType = normal
		e.seats[seat.Label()] = seat
	}
	b1 := model.Seat{Row: "B", Column: 1, RoomId: room.ID, IsAvailable: true, SeatTypeId: vip.ID}
	require.NoError(t, db.Create(&b1).Error)
	b1.SeatType = vip
	e.seats["B1"] = b1

	movie := model.Movie{Title: "Phim Test", Slug: "phim-test", Duration: 120, StatusMovie: "NOW_SHOWING"}
	require.NoError(t, db.Create(&movie).Error)

	start := time.Date(2026, time.March, 4, 14, 0, 0, 0, time.Local)
	e.showtime = model.Showtime{
		PublicCode: "ST-HANDLER1",
		StartTime:  start,
		EndTime:    start.Add(2 * time.Hour),
		Price:      vnd(85000),
		Status:     model.ShowtimeAvailable,
		Format:     "2D",
		MovieId:    movie.ID,
		RoomId:     room.ID,
	}
	require.NoError(t, db.Create(&e.showtime).Error)

	popcorn := model.FoodItem{Name: "Bắp rang bơ", Category: "FOOD", Price: vnd(45000), IsAvailable: true}
	require.NoError(t, db.Create(&popcorn).Error)
	e.foods["popcorn"] = popcorn
	tea := model.FoodItem{Name: "Trà đào hết mùa", Category: "DRINK", Price: vnd(30000), IsAvailable: false}
	require.NoError(t, db.Create(&tea).Error)
	e.foods["tea"] = tea

	require.NoError(t, db.Create(&model.Promotion{
		Code: "GIAM10", Name: "Giảm 10%", DiscountType: "percentage",
		DiscountValue: decimal.NewFromInt(10), MinPurchase: vnd(100000),
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local),
		EndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.Local),
		Status:    "active",
	}).Error)

	e.token, err = helper.GenerateAccessToken(model.TokenClaim{CustomerId: e.customer.ID, Username: e.customer.UserName})
	require.NoError(t, err)

	e.app = fiber.New()
	router.SetupRoutes(e.app)
	return e
}

func (e *env) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func seatIds(e *env, labels ...string) []uint {
	ids := make([]uint, 0, len(labels))
	for _, label := range labels {
		ids = append(ids, e.seats[label].ID)
	}
	return ids
}

// createBooking đặt ghế qua API, trả về mã đơn và phần data của response
func (e *env) createBooking(t *testing.T, labels ...string) (string, map[string]any) {
	t.Helper()

	resp := e.do(t, fiber.MethodPost, "/api/v1/booking/", fiber.Map{
		"showtimeId": e.showtime.ID,
		"seatIds":    seatIds(e, labels...),
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	booking := data["booking"].(map[string]any)
	return booking["bookingCode"].(string), data
}

func (e *env) bookingByCode(t *testing.T, code string) model.Booking {
	t.Helper()
	var booking model.Booking
	require.NoError(t, e.db.Where("public_code = ?", code).First(&booking).Error)
	return booking
}
