package model

import "github.com/shopspring/decimal"

// FoodItem đồ ăn / nước uống bán kèm vé (bắp, nước, combo...)
type FoodItem struct {
	DTO
	Name        string          `gorm:"not null;unique" validate:"required" json:"name"`
	Category    string          `gorm:"size:20" validate:"omitempty,oneof=FOOD DRINK COMBO" json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(12,0);not null" json:"price"`
	IsAvailable bool            `gorm:"default:true" json:"isAvailable"`
	ImageUrl    *string         `gorm:"type:varchar(255)" json:"imageUrl"`
}
