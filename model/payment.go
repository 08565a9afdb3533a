package model

import "github.com/shopspring/decimal"

type Payment struct {
	DTO
	BookingId   uint            `gorm:"not null" json:"bookingId"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,0);not null" json:"amount"`
	PaymentCode string          `gorm:"unique" json:"paymentCode"`
	Status      string          `gorm:"default:'PENDING'" json:"status"` // PENDING, PAID, FAILED
	Method      string          `json:"method"`                          // CASH_COUNTER, CARD, VNPAY, MOMO

	Booking Booking `gorm:"foreignKey:BookingId" json:"-"`
}
