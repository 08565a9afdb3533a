package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ShowtimeAvailable = "AVAILABLE"
	ShowtimeSoldOut   = "SOLD_OUT"
	ShowtimeCancelled = "CANCELLED"
	ShowtimeEnded     = "ENDED"
)

type Showtime struct {
	DTO
	PublicCode string          `gorm:"size:16;uniqueIndex" json:"publicCode"`
	StartTime  time.Time       `validate:"required" json:"start"`
	EndTime    time.Time       `validate:"required" json:"end"`
	Price      decimal.Decimal `gorm:"type:decimal(12,0);not null" json:"price"` // giá vé cơ bản (VND)
	Status     string          `gorm:"not null;default:'AVAILABLE'" json:"status"`
	Format     string          `gorm:"size:10" json:"format"` // 2D, 3D, IMAX, 4DX
	MovieId    uint            `json:"movieId"`
	RoomId     uint            `json:"roomId"`
	Movie      Movie           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:MovieId" json:"Movie"`
	Room       Room            `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:RoomId" json:"Room"`
}
