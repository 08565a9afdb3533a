package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	BookingPending   = "PENDING"   // Giữ ghế, chờ thanh toán (có thời hạn)
	BookingConfirmed = "CONFIRMED" // Đã thanh toán
	BookingCancelled = "CANCELLED" // Khách hủy trước giờ chiếu
	BookingExpired   = "EXPIRED"   // Hết hạn giữ ghế, chưa thanh toán
	BookingCompleted = "COMPLETED" // Đã xem xong suất chiếu
)

// Booking đơn đặt vé: sở hữu các dòng ghế và dòng bắp nước của nó,
// chúng chỉ được tạo/hủy cùng vòng đời của đơn.
type Booking struct {
	DTO
	PublicCode string    `gorm:"size:20;uniqueIndex" json:"publicCode"` // BK-XXXXXXXX
	CustomerId uint      `json:"customerId"`
	Customer   Customer  `gorm:"foreignKey:CustomerId" json:"-"`
	ShowtimeId uint      `json:"showtimeId"`
	Showtime   Showtime  `gorm:"foreignKey:ShowtimeId" json:"showtime"`

	SeatAmount     decimal.Decimal `gorm:"type:decimal(12,0);not null" json:"seatAmount"`
	FoodAmount     decimal.Decimal `gorm:"type:decimal(12,0);not null" json:"foodAmount"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,0);not null" json:"discountAmount"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,0);not null" json:"totalAmount"`
	SeatCount      int             `gorm:"not null" json:"seatCount"`

	Status      string     `gorm:"not null;default:'PENDING';index" json:"status"`
	Notes       string     `gorm:"type:text" json:"notes"`
	CancelledAt *time.Time `json:"cancelledAt"`

	Seats []BookingSeat `gorm:"foreignKey:BookingId" json:"seats"`
	Items []BookingItem `gorm:"foreignKey:BookingId" json:"items"`
}

// BookingSeat dòng giữ ghế: 1 ghế cho 1 suất chiếu thuộc 1 đơn,
// giá chốt tại thời điểm tạo đơn (không tính lại về sau).
type BookingSeat struct {
	DTO
	BookingId  uint            `gorm:"not null;index" json:"bookingId"`
	ShowtimeId uint            `gorm:"not null;index:idx_booking_seats_showtime_seat" json:"showtimeId"`
	SeatId     uint            `gorm:"not null;index:idx_booking_seats_showtime_seat" json:"seatId"`
	SeatRow    string          `json:"seatRow"`
	SeatNumber int             `json:"seatNumber"`
	Price      decimal.Decimal `gorm:"type:decimal(12,0);not null" json:"price"`

	Seat Seat `gorm:"foreignKey:SeatId" json:"-"`
}

// Label nhãn ghế hiển thị, ví dụ "A1"
func (bs BookingSeat) Label() string {
	return Seat{Row: bs.SeatRow, Column: bs.SeatNumber}.Label()
}

// BookingItem dòng bắp nước kèm đơn, đơn giá chốt tại thời điểm tạo đơn
type BookingItem struct {
	DTO
	BookingId  uint            `gorm:"not null;index" json:"bookingId"`
	FoodItemId uint            `gorm:"not null" json:"foodItemId"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,0);not null" json:"unitPrice"`

	FoodItem FoodItem `gorm:"foreignKey:FoodItemId" json:"foodItem"`
}

type BookingItemInput struct {
	FoodItemId uint `json:"foodItemId" validate:"required,gt=0"`
	Quantity   int  `json:"quantity" validate:"required,gt=0"`
}

type CreateBookingInput struct {
	ShowtimeId    uint               `json:"showtimeId" validate:"required,gt=0"`
	SeatIds       []uint             `json:"seatIds" validate:"required,min=1,dive,gt=0"`
	Items         []BookingItemInput `json:"items" validate:"omitempty,dive"`
	PromotionCode string             `json:"promotionCode"`
	Notes         string             `json:"notes"`
}

type ConfirmBookingInput struct {
	Method string `json:"method" validate:"required,oneof=CASH_COUNTER CARD VNPAY MOMO"`
}
