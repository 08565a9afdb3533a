package helper

import (
	"cinema_booking/database"
	"cinema_booking/model"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var showtimeScheduler gocron.Scheduler

// CloseEndedShowtimes đóng các suất chiếu đã kết thúc
func CloseEndedShowtimes() {
	now := Clock.Now()
	result := database.DB.Model(&model.Showtime{}).
		Where("status = ? AND end_time < ?", model.ShowtimeAvailable, now).
		Update("status", model.ShowtimeEnded)

	if result.Error != nil {
		log.Printf("Lỗi cập nhật suất chiếu: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Đã đóng %d suất chiếu kết thúc", result.RowsAffected)
	}
}

func StartShowtimeStatusScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	showtimeScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(5*time.Minute),
		gocron.NewTask(CloseEndedShowtimes),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Showtime status scheduler started (5 phút/lần)")
}

// Dừng scheduler khi tắt server
func StopShowtimeStatusScheduler() {
	if showtimeScheduler != nil {
		_ = showtimeScheduler.Shutdown()
		log.Println("Showtime status scheduler đã dừng")
	}
}
