package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Promotion struct {
	DTO
	Code          string          `gorm:"unique;not null" json:"code"`
	Name          string          `gorm:"not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	DiscountType  string          `gorm:"not null" json:"discountType"` //'percentage','fixed'
	DiscountValue decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"discountValue"`
	MinPurchase   decimal.Decimal `gorm:"type:decimal(12,0);not null;default:0" json:"minPurchase"` // tổng đơn tối thiểu để áp dụng
	StartDate     time.Time       `gorm:"not null" json:"startDate"`
	EndDate       time.Time       `gorm:"not null" json:"endDate"`
	Status        string          `gorm:"default:'active';not null" json:"status"` //'active','inactive','expired'
}
