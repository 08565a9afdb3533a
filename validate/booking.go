package validate

import (
	"cinema_booking/constants"
	"cinema_booking/model"
	"cinema_booking/utils"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// CreateBooking parse + validate input đặt vé. Mọi lỗi dữ liệu (danh sách ghế
// rỗng, ghế trùng, số lượng <= 0) bị chặn TẠI ĐÂY, trước khi khóa ghế.
func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.RespondError(c, &model.ValidationError{Field: "body", Message: err.Error()})
		}

		// Ghế trùng trong cùng một yêu cầu
		seen := make(map[uint]bool, len(input.SeatIds))
		for _, seatId := range input.SeatIds {
			if seen[seatId] {
				return utils.RespondError(c, &model.ValidationError{
					Field:   "seatIds",
					Message: fmt.Sprintf("ghế %d bị lặp trong yêu cầu", seatId),
				})
			}
			seen[seatId] = true
		}

		// Món trùng trong cùng một yêu cầu
		seenItems := make(map[uint]bool, len(input.Items))
		for _, item := range input.Items {
			if seenItems[item.FoodItemId] {
				return utils.RespondError(c, &model.ValidationError{
					Field:   "items",
					Message: fmt.Sprintf("món %d bị lặp trong yêu cầu", item.FoodItemId),
				})
			}
			seenItems[item.FoodItemId] = true
		}

		c.Locals("input", input)
		return c.Next()
	}
}

// ConfirmBooking parse + validate input xác nhận thanh toán
func ConfirmBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ConfirmBookingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.RespondError(c, &model.ValidationError{Field: "method", Message: err.Error()})
		}

		c.Locals("input", input)
		return c.Next()
	}
}
