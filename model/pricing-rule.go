package model

import "github.com/shopspring/decimal"

// DayTypeAll khớp mọi loại ngày khi xuất hiện trong DayTypes
const DayTypeAll = "ALL"

// PricingRule quy tắc giá vé theo loại phòng / loại ngày / khung giờ.
// Quy tắc có priority cao nhất và khớp đầu tiên sẽ thắng; không khớp quy tắc
// nào thì dùng giá cơ bản của suất chiếu.
type PricingRule struct {
	DTO
	Name     string          `gorm:"size:100;not null" json:"name" validate:"required,min=3,max=100"`
	RoomType *RoomType       `gorm:"size:20" json:"roomType"`                                                                                    // nil = mọi loại phòng
	DayTypes []string        `gorm:"type:json;serializer:json" json:"dayTypes" validate:"required,dive,oneof=ALL weekday friday saturday sunday weekend holiday"` // chứa "ALL" = mọi ngày
	TimeFrom *string         `gorm:"size:5" json:"timeFrom" validate:"omitempty,len=5"` // "18:00", nil = không giới hạn
	TimeTo   *string         `gorm:"size:5" json:"timeTo" validate:"omitempty,len=5"`   // "22:00", nil = không giới hạn
	Price    decimal.Decimal `gorm:"type:decimal(12,0);not null" json:"price"`
	Priority int             `gorm:"not null;default:50;check:priority >= 0 AND priority <= 100" json:"priority" validate:"min=0,max=100"`
	Active   bool            `gorm:"default:true" json:"active"`
}
