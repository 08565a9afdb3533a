package handler

import (
	"cinema_booking/config"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ConfirmBooking xác nhận thanh toán cho đơn PENDING trong hạn giữ ghế.
// Đua với sweeper được giải quyết bằng update có điều kiện: thua thì
// đơn đã EXPIRED, khách phải đặt lại.
func ConfirmBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ConfirmBookingInput)

	customer, err := helper.GetCustomerFromToken(c)
	if err != nil {
		return utils.RespondError(c, err)
	}

	bookingCode := c.Params("bookingCode")
	db := database.DB

	var booking model.Booking
	if err := db.
		Preload("Seats").
		Preload("Items.FoodItem").
		Preload("Showtime").
		Preload("Showtime.Movie").
		Preload("Showtime.Room").
		Preload("Showtime.Room.Cinema").
		Where("public_code = ? AND customer_id = ?", bookingCode, customer.ID).
		First(&booking).Error; err != nil {
		return utils.RespondError(c, &model.NotFoundError{Resource: "booking", Key: bookingCode})
	}

	if booking.Status == model.BookingExpired {
		return utils.RespondError(c, &model.BookingExpiredError{BookingCode: booking.PublicCode})
	}
	if booking.Status != model.BookingPending {
		return utils.RespondError(c, &model.InvalidStateTransitionError{
			BookingCode: booking.PublicCode,
			From:        booking.Status,
			To:          model.BookingConfirmed,
		})
	}

	// Hết hạn giữ ghế mà sweeper chưa kịp quét: tự chuyển EXPIRED luôn
	if helper.IsHoldExpired(&booking) {
		if _, err := helper.TransitionBookingStatus(db, booking.ID, model.BookingPending, model.BookingExpired, nil); err != nil {
			log.Printf("Lỗi chuyển đơn %s sang hết hạn: %v", booking.PublicCode, err)
		}
		BroadcastShowtime(booking.ShowtimeId)
		return utils.RespondError(c, &model.BookingExpiredError{BookingCode: booking.PublicCode})
	}

	if err := chargePayment(input.Method, &booking); err != nil {
		// Đơn VẪN PENDING: khách đổi phương thức và thử lại trong hạn giữ ghế
		payment := model.Payment{
			BookingId:   booking.ID,
			Amount:      booking.TotalAmount,
			PaymentCode: helper.GeneratePaymentCode(),
			Status:      "FAILED",
			Method:      input.Method,
		}
		if dbErr := db.Create(&payment).Error; dbErr != nil {
			log.Printf("Lỗi ghi payment FAILED cho đơn %s: %v", booking.PublicCode, dbErr)
		}
		return utils.RespondError(c, err)
	}

	ok, err := helper.TransitionBookingStatus(db, booking.ID, model.BookingPending, model.BookingConfirmed, nil)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Xác nhận đơn thất bại", err)
	}
	if !ok {
		// Sweeper thắng cuộc đua giữa lúc charge và update
		db.First(&booking, booking.ID)
		if booking.Status == model.BookingExpired {
			return utils.RespondError(c, &model.BookingExpiredError{BookingCode: booking.PublicCode})
		}
		return utils.RespondError(c, &model.InvalidStateTransitionError{
			BookingCode: booking.PublicCode,
			From:        booking.Status,
			To:          model.BookingConfirmed,
		})
	}
	booking.Status = model.BookingConfirmed

	payment := model.Payment{
		BookingId:   booking.ID,
		Amount:      booking.TotalAmount,
		PaymentCode: helper.GeneratePaymentCode(),
		Status:      "PAID",
		Method:      input.Method,
	}
	if err := db.Create(&payment).Error; err != nil {
		log.Printf("Lỗi ghi payment PAID cho đơn %s: %v", booking.PublicCode, err)
	}

	seats := make([]string, 0, len(booking.Seats))
	for _, bs := range booking.Seats {
		seats = append(seats, bs.Label())
	}
	utils.SendBookingConfirmationEmail(customer.Email, utils.BookingConfirmationData{
		BookingCode:   booking.PublicCode,
		MovieName:     booking.Showtime.Movie.Title,
		CinemaName:    booking.Showtime.Room.Cinema.Name,
		RoomName:      booking.Showtime.Room.Name,
		Showtime:      booking.Showtime.StartTime.Format("15:04 - 02/01/2006"),
		Seats:         strings.Join(seats, ", "),
		TotalAmount:   booking.TotalAmount.String(),
		PaymentMethod: input.Method,
	})

	BroadcastShowtime(booking.ShowtimeId)

	response := buildBookingResponse(&booking)
	response["paymentCode"] = payment.PaymentCode
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// chargePayment gọi cổng thanh toán theo phương thức. CASH_COUNTER thu tại
// quầy nên luôn pass; các cổng online bật/tắt qua PAYMENT_METHODS.
func chargePayment(method string, booking *model.Booking) error {
	if method == "CASH_COUNTER" {
		return nil
	}

	enabled := config.ConfigOrDefault("PAYMENT_METHODS", "CASH_COUNTER,CARD,VNPAY,MOMO")
	for _, m := range strings.Split(enabled, ",") {
		if strings.TrimSpace(m) == method {
			// TODO: tích hợp SDK VNPAY/MOMO thật khi có merchant account
			log.Printf("Charge %s đ qua %s cho đơn %s", booking.TotalAmount.String(), method, booking.PublicCode)
			return nil
		}
	}
	return &model.PaymentFailedError{Method: method, Reason: "phương thức thanh toán đang tạm khóa"}
}

// CompleteBooking check-in tại quầy: chỉ đơn CONFIRMED mới hoàn tất được
func CompleteBooking(c *fiber.Ctx) error {
	if _, err := helper.GetCustomerFromToken(c); err != nil {
		return utils.RespondError(c, err)
	}

	bookingCode := c.Params("bookingCode")
	db := database.DB

	var booking model.Booking
	if err := db.Where("public_code = ?", bookingCode).First(&booking).Error; err != nil {
		return utils.RespondError(c, &model.NotFoundError{Resource: "booking", Key: bookingCode})
	}

	ok, err := helper.TransitionBookingStatus(db, booking.ID, model.BookingConfirmed, model.BookingCompleted, nil)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Hoàn tất đơn thất bại", err)
	}
	if !ok {
		db.First(&booking, booking.ID)
		return utils.RespondError(c, &model.InvalidStateTransitionError{
			BookingCode: booking.PublicCode,
			From:        booking.Status,
			To:          model.BookingCompleted,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":     "Check-in thành công",
		"bookingCode": booking.PublicCode,
		"status":      model.BookingCompleted,
	})
}
