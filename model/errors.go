package model

import (
	"fmt"
	"strings"
)

// Lỗi nghiệp vụ có cấu trúc: handler dịch sang HTTP response,
// caller không phải parse message.

type NotFoundError struct {
	Resource string // "customer", "showtime", "seat", "booking", "foodItem"
	Key      any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("không tìm thấy %s (%v)", e.Resource, e.Key)
}

type ShowtimeNotAvailableError struct {
	ShowtimeId       uint
	Reason           string // constants.REASON_*
	RemainingMinutes int    // chỉ có nghĩa với TOO_CLOSE_TO_START
}

func (e *ShowtimeNotAvailableError) Error() string {
	if e.RemainingMinutes > 0 {
		return fmt.Sprintf("suất chiếu %d không khả dụng: %s (còn %d phút)", e.ShowtimeId, e.Reason, e.RemainingMinutes)
	}
	return fmt.Sprintf("suất chiếu %d không khả dụng: %s", e.ShowtimeId, e.Reason)
}

// SeatAlreadyBookedError luôn mang ĐẦY ĐỦ danh sách ghế xung đột
// để client render lại sơ đồ ghế cho khách chọn lại.
type SeatAlreadyBookedError struct {
	SeatIds    []uint
	SeatLabels []string
}

func (e *SeatAlreadyBookedError) Error() string {
	return fmt.Sprintf("ghế đã được đặt: %s", strings.Join(e.SeatLabels, ", "))
}

type BookingExpiredError struct {
	BookingCode string
}

func (e *BookingExpiredError) Error() string {
	return fmt.Sprintf("đơn %s đã hết hạn giữ ghế", e.BookingCode)
}

type InvalidStateTransitionError struct {
	BookingCode string
	From        string
	To          string
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("đơn %s không thể chuyển từ %s sang %s", e.BookingCode, e.From, e.To)
}

type PaymentFailedError struct {
	Method string
	Reason string
}

func (e *PaymentFailedError) Error() string {
	return fmt.Sprintf("thanh toán %s thất bại: %s", e.Method, e.Reason)
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
