package helper

import (
	"cinema_booking/model"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Thời hạn giữ ghế của đơn PENDING và lead time tối thiểu trước giờ chiếu
const (
	BookingHoldDuration = 5 * time.Minute
	MinBookingLeadTime  = 30 * time.Minute
)

func GenerateBookingCode() string {
	return "BK-" + strings.ToUpper(uuid.New().String()[:8])
}

func GeneratePaymentCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "PAY-" + strings.ToUpper(raw[:10])
}

// TransitionBookingStatus đổi trạng thái đơn bằng MỘT update có điều kiện
// trên trạng thái hiện tại: hai luồng đua nhau (confirm vs sweeper) chỉ có
// một bên thắng, bên thua nhận false và tự đọc lại trạng thái mới.
func TransitionBookingStatus(db *gorm.DB, bookingId uint, from string, to string, extra map[string]any) (bool, error) {
	updates := map[string]any{"status": to}
	for k, v := range extra {
		updates[k] = v
	}

	result := db.Model(&model.Booking{}).
		Where("id = ? AND status = ?", bookingId, from).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IsHoldExpired đơn PENDING đã quá hạn giữ ghế chưa (theo Clock inject được).
// Hạn giữ chỉ còn hiệu lực TRƯỚC thời điểm createdAt + BookingHoldDuration:
// đúng mốc đó là hết hạn.
func IsHoldExpired(booking *model.Booking) bool {
	deadline := booking.CreatedAt.Add(BookingHoldDuration)
	return !Clock.Now().Before(deadline)
}

// ResolveDiscount tính tiền giảm cho mã khuyến mãi trên tổng trước giảm.
// Mã không tồn tại / hết hiệu lực / chưa đạt đơn tối thiểu → giảm 0 đồng,
// KHÔNG chặn đơn (chỉ log) — xem DESIGN.md.
func ResolveDiscount(db *gorm.DB, code string, preTotal decimal.Decimal) decimal.Decimal {
	zero := decimal.Zero
	if code == "" {
		return zero
	}

	now := Clock.Now()
	var promotion model.Promotion
	err := db.Where("code = ? AND status = 'active'", code).
		Where("start_date <= ? AND end_date >= ?", now, now).
		First(&promotion).Error
	if err != nil {
		log.Printf("Mã khuyến mãi %s không hợp lệ hoặc hết hiệu lực, bỏ qua", code)
		return zero
	}

	if preTotal.LessThan(promotion.MinPurchase) {
		log.Printf("Đơn chưa đạt mức tối thiểu của mã %s, bỏ qua", code)
		return zero
	}

	var discount decimal.Decimal
	switch promotion.DiscountType {
	case "percentage":
		discount = preTotal.Mul(promotion.DiscountValue).Div(decimal.NewFromInt(100)).Truncate(0)
	case "fixed":
		discount = promotion.DiscountValue.Truncate(0)
	default:
		log.Printf("Loại khuyến mãi %s không hỗ trợ, bỏ qua", promotion.DiscountType)
		return zero
	}

	// Giảm không bao giờ vượt tổng trước giảm
	if discount.GreaterThan(preTotal) {
		discount = preTotal
	}
	return discount
}
