package utils

import (
	"cinema_booking/constants"
	"cinema_booking/model"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// RespondError dịch lỗi nghiệp vụ có kiểu sang HTTP response có cấu trúc;
// lỗi không nhận diện được coi là lỗi hệ thống.
func RespondError(c *fiber.Ctx, err error) error {
	var notFound *model.NotFoundError
	if errors.As(err, &notFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"code":     "NOT_FOUND",
			"message":  notFound.Error(),
			"resource": notFound.Resource,
		})
	}

	var notAvailable *model.ShowtimeNotAvailableError
	if errors.As(err, &notAvailable) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"code":             "SHOWTIME_NOT_AVAILABLE",
			"message":          notAvailable.Error(),
			"reason":           notAvailable.Reason,
			"remainingMinutes": notAvailable.RemainingMinutes,
		})
	}

	var seatBooked *model.SeatAlreadyBookedError
	if errors.As(err, &seatBooked) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"code":       "SEAT_ALREADY_BOOKED",
			"message":    seatBooked.Error(),
			"seatIds":    seatBooked.SeatIds,
			"seatLabels": seatBooked.SeatLabels,
		})
	}

	var expired *model.BookingExpiredError
	if errors.As(err, &expired) {
		return c.Status(fiber.StatusGone).JSON(fiber.Map{
			"code":        "BOOKING_EXPIRED",
			"message":     expired.Error(),
			"bookingCode": expired.BookingCode,
		})
	}

	var invalidState *model.InvalidStateTransitionError
	if errors.As(err, &invalidState) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"code":        "INVALID_STATE_TRANSITION",
			"message":     invalidState.Error(),
			"bookingCode": invalidState.BookingCode,
			"from":        invalidState.From,
			"to":          invalidState.To,
		})
	}

	var paymentFailed *model.PaymentFailedError
	if errors.As(err, &paymentFailed) {
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"code":    "PAYMENT_FAILED",
			"message": paymentFailed.Error(),
			"method":  paymentFailed.Method,
			"reason":  paymentFailed.Reason,
		})
	}

	var validation *model.ValidationError
	if errors.As(err, &validation) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "VALIDATION_ERROR",
			"message": validation.Error(),
			"field":   validation.Field,
		})
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"code":    "NOT_FOUND",
			"message": err.Error(),
		})
	}

	return ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		offset := *limit * (*page - 1)
		query = query.Offset(offset)
	}

	return query
}

func Ptr[T any](v T) *T {
	return &v
}
