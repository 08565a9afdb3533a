package helper

import (
	"cinema_booking/model"
	"time"

	"gorm.io/gorm"
)

type DayInfo struct {
	Date        time.Time
	Weekday     time.Weekday
	IsWeekend   bool
	IsFriday    bool
	IsHoliday   bool
	DayTypes    []string
	HolidayName string
}

// ClassifyDay phân loại ngày chiếu để so khớp quy tắc giá
func ClassifyDay(db *gorm.DB, date time.Time) *DayInfo {
	info := &DayInfo{
		Date:     date,
		Weekday:  date.Weekday(),
		DayTypes: []string{},
	}

	classifyWeekday(info)
	checkHoliday(db, info)

	return info
}

func classifyWeekday(info *DayInfo) {
	switch info.Weekday {
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday:
		info.DayTypes = append(info.DayTypes, "weekday")
	case time.Friday:
		info.DayTypes = append(info.DayTypes, "friday", "weekday")
		info.IsFriday = true
	case time.Saturday:
		info.DayTypes = append(info.DayTypes, "saturday", "weekend")
		info.IsWeekend = true
	case time.Sunday:
		info.DayTypes = append(info.DayTypes, "sunday", "weekend")
		info.IsWeekend = true
	}
}

// Ngày lễ: so theo ngày-tháng nếu lặp hàng năm, so cả ngày nếu không
func checkHoliday(db *gorm.DB, info *DayInfo) {
	var holidays []model.Holiday
	if err := db.Find(&holidays).Error; err != nil {
		return
	}

	for _, holiday := range holidays {
		match := false
		if holiday.IsRecurring {
			match = holiday.Date.Month() == info.Date.Month() && holiday.Date.Day() == info.Date.Day()
		} else {
			match = holiday.Date.Format("2006-01-02") == info.Date.Format("2006-01-02")
		}
		if match {
			info.IsHoliday = true
			info.DayTypes = append(info.DayTypes, "holiday")
			info.HolidayName = holiday.Name
			break
		}
	}
}
