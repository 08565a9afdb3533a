package handler

import (
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"log"

	"github.com/robfig/cron/v3"
)

var sweeperCron *cron.Cron

// ExpireBookings quét đơn PENDING quá hạn giữ ghế và chuyển sang EXPIRED.
// Mỗi đơn chuyển bằng update có điều kiện nên chạy lặp lại vô hại: đơn đã
// được confirm/hủy giữa hai lần quét không bao giờ bị đụng vào.
// Trả về số đơn thực sự chuyển trạng thái.
func ExpireBookings() int {
	db := database.DB
	cutoff := helper.Clock.Now().Add(-helper.BookingHoldDuration)

	var stale []model.Booking
	if err := db.Select("id", "public_code", "showtime_id").
		Where("status = ? AND created_at <= ?", model.BookingPending, cutoff).
		Find(&stale).Error; err != nil {
		log.Printf("Lỗi quét đơn quá hạn: %v", err)
		return 0
	}
	if len(stale) == 0 {
		return 0
	}

	expired := 0
	touchedShowtimes := make(map[uint]bool)
	for _, booking := range stale {
		ok, err := helper.TransitionBookingStatus(db, booking.ID, model.BookingPending, model.BookingExpired, nil)
		if err != nil {
			log.Printf("Lỗi chuyển đơn %s sang hết hạn: %v", booking.PublicCode, err)
			continue
		}
		if ok {
			expired++
			touchedShowtimes[booking.ShowtimeId] = true
		}
	}

	if expired > 0 {
		log.Printf("Đã giải phóng ghế của %d đơn quá hạn giữ", expired)
		for showtimeId := range touchedShowtimes {
			BroadcastShowtime(showtimeId)
		}
	}
	return expired
}

// StartBookingSweeper chạy quét đơn quá hạn mỗi 30 giây, lượt trước chưa
// xong thì bỏ lượt sau
func StartBookingSweeper() {
	sweeperCron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	sweeperCron.AddFunc("@every 30s", func() {
		ExpireBookings()
	})
	sweeperCron.Start()
	log.Println("Booking sweeper đã chạy (chu kỳ 30s)")
}

func StopBookingSweeper() {
	if sweeperCron != nil {
		sweeperCron.Stop()
	}
}
