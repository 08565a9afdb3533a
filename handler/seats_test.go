package handler_test

import (
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/handler"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetShowtimeSeatsRejectsNonNumericId(t *testing.T) {
	e := setupEnv(t)

	resp := e.do(t, fiber.MethodGet, "/api/v1/showtime/abc/seats", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, constants.DATA_INPUT_IS_NOT_NUMBER, decodeBody(t, resp)["message"])

	resp = e.do(t, fiber.MethodGet, "/api/v1/showtime/abc/reserved-seats", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, constants.DATA_INPUT_IS_NOT_NUMBER, decodeBody(t, resp)["message"])
}

// Sơ đồ ghế phải dựng được trên handle DB được giao, kể cả khi biến toàn cục
// đã trỏ sang nơi khác: goroutine broadcast chạy muộn vẫn an toàn.
func TestFetchShowtimeSeatsUsesGivenHandle(t *testing.T) {
	e := setupEnv(t)
	e.createBooking(t, "A1")

	db := database.DB
	database.DB = nil
	t.Cleanup(func() { database.DB = db })

	seatMap, err := handler.FetchShowtimeSeats(db, e.showtime.ID)
	require.NoError(t, err)

	require.Len(t, seatMap["A"], 5)
	assert.Equal(t, "RESERVED", seatMap["A"][0].Status)
	assert.Equal(t, "AVAILABLE", seatMap["A"][1].Status)
	assert.Equal(t, "85000", seatMap["A"][1].Price)
}
