package helper

import (
	"cinema_booking/model"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LoadActivePricingRules lấy snapshot quy tắc giá đang bật,
// sắp theo priority giảm dần (cùng priority thì quy tắc tạo trước thắng)
func LoadActivePricingRules(db *gorm.DB) ([]model.PricingRule, error) {
	var rules []model.PricingRule
	err := db.Where("active = true").
		Order("priority desc").
		Order("id asc").
		Find(&rules).Error
	return rules, err
}

// MatchPricingRule tìm quy tắc đầu tiên khớp cả 3 chiều:
// loại phòng (nil = mọi phòng), loại ngày ("ALL" = mọi ngày),
// khung giờ (nil = không giới hạn). Không khớp thì trả nil.
func MatchPricingRule(rules []model.PricingRule, showtime *model.Showtime, dayTypes []string) *model.PricingRule {
	for i := range rules {
		rule := &rules[i]
		if !ruleMatchesRoom(rule, showtime.Room.Type) {
			continue
		}
		if !ruleMatchesDay(rule, dayTypes) {
			continue
		}
		if !ruleMatchesTime(rule, showtime.StartTime) {
			continue
		}
		return rule
	}
	return nil
}

func ruleMatchesRoom(rule *model.PricingRule, roomType model.RoomType) bool {
	return rule.RoomType == nil || *rule.RoomType == roomType
}

func ruleMatchesDay(rule *model.PricingRule, dayTypes []string) bool {
	for _, rd := range rule.DayTypes {
		if rd == model.DayTypeAll {
			return true
		}
		for _, dt := range dayTypes {
			if rd == dt {
				return true
			}
		}
	}
	return false
}

// Khung giờ so theo phút trong ngày, cận dưới đóng, cận trên mở: [from, to)
func ruleMatchesTime(rule *model.PricingRule, startTime time.Time) bool {
	minute := startTime.Hour()*60 + startTime.Minute()

	if rule.TimeFrom != nil {
		from, err := parseMinuteOfDay(*rule.TimeFrom)
		if err != nil || minute < from {
			return false
		}
	}
	if rule.TimeTo != nil {
		to, err := parseMinuteOfDay(*rule.TimeTo)
		if err != nil || minute >= to {
			return false
		}
	}
	return true
}

func parseMinuteOfDay(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// CalculateSeatPrice tính giá 1 ghế cho 1 suất chiếu:
// giá gốc = quy tắc khớp đầu tiên (hoặc giá suất chiếu nếu không có),
// nhân hệ số loại ghế (cắt về đồng chẵn) rồi cộng phụ thu loại ghế.
// Thuần túy trên snapshot đầu vào, không đụng DB.
func CalculateSeatPrice(showtime *model.Showtime, seat *model.Seat, rules []model.PricingRule, dayTypes []string) decimal.Decimal {
	basePrice := showtime.Price
	if rule := MatchPricingRule(rules, showtime, dayTypes); rule != nil {
		basePrice = rule.Price
	}

	price := basePrice.Mul(seat.SeatType.PriceModifier).Truncate(0)
	return price.Add(seat.SeatType.ExtraFee)
}
