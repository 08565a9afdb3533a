package handler

import (
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	SeatAvailable = "AVAILABLE"
	SeatReserved  = "RESERVED"
	SeatBlocked   = "BLOCKED"
)

type SeatUI struct {
	Id     uint   `json:"id"`
	Label  string `json:"label"`
	Type   string `json:"type"`
	Status string `json:"status"`
	Price  string `json:"price"` // giá báo cho ghế này tại suất chiếu, VND
}

// FetchShowtimeSeats dựng sơ đồ ghế theo hàng cho một suất chiếu.
// Trạng thái ghế SUY RA từ các đơn còn hiệu lực, không đọc cờ nào trên ghế.
// Nhận handle DB tường minh: goroutine broadcast giữ handle nó được giao,
// không đọc lại biến toàn cục lúc chạy.
func FetchShowtimeSeats(db *gorm.DB, showtimeId uint) (map[string][]SeatUI, error) {
	var showtime model.Showtime
	if err := db.First(&showtime, showtimeId).Error; err != nil {
		return nil, &model.NotFoundError{Resource: "showtime", Key: showtimeId}
	}

	var seats []model.Seat
	if err := db.Preload("SeatType").
		Where("room_id = ?", showtime.RoomId).
		Order(`"row" asc, "column" asc`).
		Find(&seats).Error; err != nil {
		return nil, err
	}

	reservedIds, err := helper.ReservedSeatIds(db, showtimeId)
	if err != nil {
		return nil, err
	}
	reserved := make(map[uint]bool, len(reservedIds))
	for _, id := range reservedIds {
		reserved[id] = true
	}

	rules, err := helper.LoadActivePricingRules(db)
	if err != nil {
		return nil, err
	}
	dayInfo := helper.ClassifyDay(db, showtime.StartTime)

	result := make(map[string][]SeatUI)
	for i := range seats {
		seat := &seats[i]
		status := SeatAvailable
		switch {
		case !seat.IsAvailable:
			status = SeatBlocked
		case reserved[seat.ID]:
			status = SeatReserved
		}

		price := helper.CalculateSeatPrice(&showtime, seat, rules, dayInfo.DayTypes)
		result[seat.Row] = append(result[seat.Row], SeatUI{
			Id:     seat.ID,
			Label:  seat.Label(),
			Type:   seat.SeatType.Type,
			Status: status,
			Price:  price.String(),
		})
	}
	return result, nil
}

// GetShowtimeSeats trả sơ đồ ghế đầy đủ (khách chọn ghế trên màn hình này).
// validate.GetById đã parse :showtimeId và cất vào locals.
func GetShowtimeSeats(c *fiber.Ctx) error {
	showtimeId := uint(c.Locals("inputId").(int))

	seatMap, err := FetchShowtimeSeats(database.DB, showtimeId)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, seatMap)
}

// GetReservedSeats chỉ trả id các ghế đang bị giữ/đã bán — client poll nhẹ
// khi không dùng websocket
func GetReservedSeats(c *fiber.Ctx) error {
	showtimeId := uint(c.Locals("inputId").(int))

	var showtime model.Showtime
	if err := database.DB.First(&showtime, showtimeId).Error; err != nil {
		return utils.RespondError(c, &model.NotFoundError{Resource: "showtime", Key: showtimeId})
	}

	seatIds, err := helper.ReservedSeatIds(database.DB, showtimeId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi tải trạng thái ghế", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"showtimeId":      showtime.ID,
		"reservedSeatIds": seatIds,
	})
}

// BroadcastShowtime đẩy sơ đồ ghế mới nhất cho mọi client đang xem suất chiếu:
// ghi thẳng cho connection local và publish qua Redis cho instance khác.
// Chạy nền để không chặn đường response.
func BroadcastShowtime(showtimeId uint) {
	db := database.DB
	go func() {
		seatMap, err := FetchShowtimeSeats(db, showtimeId)
		if err != nil {
			log.Printf("Lỗi dựng sơ đồ ghế suất %d để broadcast: %v", showtimeId, err)
			return
		}

		payload, err := json.Marshal(seatMap)
		if err != nil {
			log.Printf("Lỗi marshal sơ đồ ghế suất %d: %v", showtimeId, err)
			return
		}

		writeToLocalConns(showtimeId, payload)
		publishSeatMap(fmt.Sprintf("showtime:%d", showtimeId), payload)
	}()
}
