package helper

import (
	"cinema_booking/model"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Mỗi suất chiếu một mutex: mọi lượt check-then-reserve trên cùng suất chiếu
// phải đi qua đây trước khi chạm DB, suất chiếu khác nhau không chặn nhau.
var (
	showtimeLocks  = make(map[uint]*sync.Mutex)
	showtimeLockMu sync.Mutex
)

// AcquireShowtimeLock khóa suất chiếu cho tới khi gọi hàm unlock trả về.
// Caller giữ khóa trọn vòng transaction đặt ghế.
func AcquireShowtimeLock(showtimeId uint) func() {
	showtimeLockMu.Lock()
	lock, ok := showtimeLocks[showtimeId]
	if !ok {
		lock = &sync.Mutex{}
		showtimeLocks[showtimeId] = lock
	}
	showtimeLockMu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// LockAndValidateSeats khóa các hàng ghế (SELECT ... FOR UPDATE trên Postgres),
// kiểm tra ghế tồn tại / còn hoạt động / đúng phòng của suất chiếu, rồi truy
// các dòng giữ ghế còn hiệu lực. Có xung đột thì trả SeatAlreadyBookedError
// với ĐẦY ĐỦ danh sách ghế đụng độ, không chỉ ghế đầu tiên.
// Phải gọi bên trong transaction và sau AcquireShowtimeLock.
func LockAndValidateSeats(tx *gorm.DB, showtime *model.Showtime, seatIds []uint) ([]model.Seat, error) {
	query := tx.Preload("SeatType").Where("id IN ?", seatIds).Order("id asc")
	if tx.Dialector.Name() == "postgres" {
		// SQLite (test) không hỗ trợ FOR UPDATE
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var seats []model.Seat
	if err := query.Find(&seats).Error; err != nil {
		return nil, err
	}

	found := make(map[uint]*model.Seat, len(seats))
	for i := range seats {
		found[seats[i].ID] = &seats[i]
	}
	for _, seatId := range seatIds {
		seat, ok := found[seatId]
		if !ok {
			return nil, &model.NotFoundError{Resource: "seat", Key: seatId}
		}
		if !seat.IsAvailable {
			return nil, &model.ValidationError{Field: "seatIds", Message: "ghế " + seat.Label() + " đang ngừng phục vụ"}
		}
		if seat.RoomId != showtime.RoomId {
			return nil, &model.ValidationError{Field: "seatIds", Message: "ghế " + seat.Label() + " không thuộc phòng của suất chiếu"}
		}
	}

	// Ghế đã có dòng giữ thuộc đơn chưa hủy / chưa hết hạn → xung đột.
	// Trạng thái ghế luôn suy ra từ đây, không có cột "đã đặt" riêng.
	var conflicts []model.BookingSeat
	if err := tx.
		Joins("JOIN bookings ON bookings.id = booking_seats.booking_id").
		Where("booking_seats.showtime_id = ? AND booking_seats.seat_id IN ?", showtime.ID, seatIds).
		Where("bookings.status NOT IN ?", []string{model.BookingCancelled, model.BookingExpired}).
		Order("booking_seats.seat_id asc").
		Find(&conflicts).Error; err != nil {
		return nil, err
	}

	if len(conflicts) > 0 {
		conflictErr := &model.SeatAlreadyBookedError{}
		seen := make(map[uint]bool)
		for _, bs := range conflicts {
			if seen[bs.SeatId] {
				continue
			}
			seen[bs.SeatId] = true
			conflictErr.SeatIds = append(conflictErr.SeatIds, bs.SeatId)
			conflictErr.SeatLabels = append(conflictErr.SeatLabels, bs.Label())
		}
		return nil, conflictErr
	}

	return seats, nil
}

// ReservedSeatIds trả danh sách ghế đang bị giữ/đã bán của một suất chiếu
// (suy ra từ các đơn chưa hủy / chưa hết hạn) — dùng cho render sơ đồ ghế.
func ReservedSeatIds(db *gorm.DB, showtimeId uint) ([]uint, error) {
	var seatIds []uint
	err := db.Model(&model.BookingSeat{}).
		Joins("JOIN bookings ON bookings.id = booking_seats.booking_id").
		Where("booking_seats.showtime_id = ?", showtimeId).
		Where("bookings.status NOT IN ?", []string{model.BookingCancelled, model.BookingExpired}).
		Order("booking_seats.seat_id asc").
		Distinct().
		Pluck("booking_seats.seat_id", &seatIds).Error
	return seatIds, err
}
