package handler_test

import (
	"cinema_booking/handler"
	"cinema_booking/model"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpireBookingsSweepsOverdueHolds(t *testing.T) {
	e := setupEnv(t)
	first, _ := e.createBooking(t, "A1")
	second, _ := e.createBooking(t, "A2")

	e.clock.Advance(6 * time.Minute)

	assert.Equal(t, 2, handler.ExpireBookings())
	assert.Equal(t, model.BookingExpired, e.bookingByCode(t, first).Status)
	assert.Equal(t, model.BookingExpired, e.bookingByCode(t, second).Status)
}

func TestExpireBookingsIdempotent(t *testing.T) {
	e := setupEnv(t)
	e.createBooking(t, "A1")

	e.clock.Advance(6 * time.Minute)

	// Chạy hai lần liên tiếp: lần hai không còn gì để quét
	assert.Equal(t, 1, handler.ExpireBookings())
	assert.Equal(t, 0, handler.ExpireBookings())
}

func TestExpireBookingsLeavesFreshHolds(t *testing.T) {
	e := setupEnv(t)
	code, _ := e.createBooking(t, "A1")

	e.clock.Advance(4 * time.Minute) // còn trong hạn

	assert.Equal(t, 0, handler.ExpireBookings())
	assert.Equal(t, model.BookingPending, e.bookingByCode(t, code).Status)

	// Đúng mốc hết hạn giữ thì sweeper phải quét được, cùng ranh giới với confirm
	e.clock.Advance(time.Minute)
	assert.Equal(t, 1, handler.ExpireBookings())
	assert.Equal(t, model.BookingExpired, e.bookingByCode(t, code).Status)
}

func TestExpireBookingsSkipsConfirmedBetweenRuns(t *testing.T) {
	e := setupEnv(t)
	confirmed, _ := e.createBooking(t, "A1")
	stale, _ := e.createBooking(t, "A2")

	// Khách thanh toán trước khi hết hạn
	resp := e.do(t, fiber.MethodPost, "/api/v1/booking/"+confirmed+"/confirm", fiber.Map{"method": "CASH_COUNTER"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	e.clock.Advance(6 * time.Minute)

	// Chỉ đơn còn PENDING bị quét, đơn đã CONFIRMED không bao giờ bị expire
	assert.Equal(t, 1, handler.ExpireBookings())
	assert.Equal(t, model.BookingConfirmed, e.bookingByCode(t, confirmed).Status)
	assert.Equal(t, model.BookingExpired, e.bookingByCode(t, stale).Status)
}

func TestExpireBookingsIgnoresCancelled(t *testing.T) {
	e := setupEnv(t)
	code, _ := e.createBooking(t, "A1")

	resp := e.do(t, fiber.MethodPost, "/api/v1/booking/"+code+"/cancel", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	e.clock.Advance(10 * time.Minute)

	assert.Equal(t, 0, handler.ExpireBookings())
	assert.Equal(t, model.BookingCancelled, e.bookingByCode(t, code).Status)
}
