package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type SeatType struct {
	DTO
	Type          string          `gorm:"not null;unique" validate:"required" json:"type"` // NORMAL VIP COUPLE DISABLED
	PriceModifier decimal.Decimal `gorm:"type:decimal(4,2);not null" json:"priceModifier"`
	ExtraFee      decimal.Decimal `gorm:"type:decimal(12,0);not null;default:0" json:"extraFee"` // phụ thu cố định (VND)
}

type Seat struct {
	DTO
	Row         string   `gorm:"not null" validate:"required" json:"row"`          // e.g., "A", "B"
	Column      int      `gorm:"not null" validate:"required,min=1" json:"column"` // e.g., 1, 2
	RoomId      uint     `json:"roomId"`
	Room        Room     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	IsAvailable bool     `gorm:"default:true" json:"isAvailable"`
	SeatTypeId  uint     `json:"seatTypeId"`
	SeatType    SeatType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"SeatType"`
}

// Label trả về nhãn ghế hiển thị cho khách, ví dụ "A1"
func (s Seat) Label() string {
	return fmt.Sprintf("%s%d", s.Row, s.Column)
}
