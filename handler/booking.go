package handler

import (
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"
	"encoding/base64"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateBooking đặt vé: khóa ghế → tính giá từng ghế → bắp nước → khuyến mãi
// → ghi cả cụm (đơn + dòng ghế + dòng bắp nước) trong MỘT transaction.
// Thứ tự kiểm tra fail-fast theo từng loại lỗi riêng.
func CreateBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateBookingInput)

	customer, err := helper.GetCustomerFromToken(c)
	if err != nil {
		return utils.RespondError(c, err)
	}

	db := database.DB

	var showtime model.Showtime
	if err := db.Preload("Movie").Preload("Room").Preload("Room.Cinema").
		First(&showtime, input.ShowtimeId).Error; err != nil {
		return utils.RespondError(c, &model.NotFoundError{Resource: "showtime", Key: input.ShowtimeId})
	}

	if reason := showtimeUnavailableReason(&showtime); reason != "" {
		return utils.RespondError(c, &model.ShowtimeNotAvailableError{ShowtimeId: showtime.ID, Reason: reason})
	}

	now := helper.Clock.Now()
	if !now.Before(showtime.StartTime) {
		return utils.RespondError(c, &model.ShowtimeNotAvailableError{
			ShowtimeId: showtime.ID,
			Reason:     constants.REASON_ALREADY_STARTED,
		})
	}
	if remaining := showtime.StartTime.Sub(now); remaining < helper.MinBookingLeadTime {
		return utils.RespondError(c, &model.ShowtimeNotAvailableError{
			ShowtimeId:       showtime.ID,
			Reason:           constants.REASON_TOO_CLOSE_TO_START,
			RemainingMinutes: int(remaining.Minutes()),
		})
	}

	// Giữ khóa suất chiếu trọn vòng check-then-reserve, kể cả lúc commit
	unlock := helper.AcquireShowtimeLock(showtime.ID)
	defer unlock()

	var booking model.Booking
	err = db.Transaction(func(tx *gorm.DB) error {
		seats, err := helper.LockAndValidateSeats(tx, &showtime, input.SeatIds)
		if err != nil {
			return err
		}

		rules, err := helper.LoadActivePricingRules(tx)
		if err != nil {
			return err
		}
		dayInfo := helper.ClassifyDay(tx, showtime.StartTime)

		seatAmount := decimal.Zero
		bookingSeats := make([]model.BookingSeat, 0, len(seats))
		for i := range seats {
			price := helper.CalculateSeatPrice(&showtime, &seats[i], rules, dayInfo.DayTypes)
			seatAmount = seatAmount.Add(price)
			bookingSeats = append(bookingSeats, model.BookingSeat{
				ShowtimeId: showtime.ID,
				SeatId:     seats[i].ID,
				SeatRow:    seats[i].Row,
				SeatNumber: seats[i].Column,
				Price:      price,
			})
		}

		foodAmount, bookingItems, err := resolveFoodItems(tx, input.Items)
		if err != nil {
			return err
		}

		preTotal := seatAmount.Add(foodAmount)
		discount := helper.ResolveDiscount(tx, input.PromotionCode, preTotal)

		booking = model.Booking{
			PublicCode:     helper.GenerateBookingCode(),
			CustomerId:     customer.ID,
			ShowtimeId:     showtime.ID,
			SeatAmount:     seatAmount,
			FoodAmount:     foodAmount,
			DiscountAmount: discount,
			TotalAmount:    preTotal.Sub(discount),
			SeatCount:      len(bookingSeats),
			Status:         model.BookingPending,
			Notes:          input.Notes,
			Seats:          bookingSeats,
			Items:          bookingItems,
		}
		booking.CreatedAt = now // hạn giữ ghế tính từ Clock, không phải giờ DB

		// Một Create ghi cả aggregate: fail giữa chừng thì không gì được ghi
		return tx.Create(&booking).Error
	})
	if err != nil {
		return utils.RespondError(c, err)
	}

	BroadcastShowtime(showtime.ID)

	booking.Showtime = showtime
	return utils.SuccessResponse(c, fiber.StatusCreated, buildBookingResponse(&booking))
}

func showtimeUnavailableReason(showtime *model.Showtime) string {
	switch showtime.Status {
	case model.ShowtimeCancelled:
		return constants.REASON_CANCELLED
	case model.ShowtimeSoldOut:
		return constants.REASON_SOLD_OUT
	case model.ShowtimeEnded:
		return constants.REASON_ENDED
	}
	return ""
}

// resolveFoodItems đối chiếu bắp nước với catalog, món ngừng bán bị từ chối
// theo TÊN món, đơn giá chốt tại thời điểm đặt
func resolveFoodItems(tx *gorm.DB, inputs []model.BookingItemInput) (decimal.Decimal, []model.BookingItem, error) {
	total := decimal.Zero
	if len(inputs) == 0 {
		return total, nil, nil
	}

	ids := make([]uint, 0, len(inputs))
	for _, item := range inputs {
		ids = append(ids, item.FoodItemId)
	}

	var foods []model.FoodItem
	if err := tx.Where("id IN ?", ids).Find(&foods).Error; err != nil {
		return total, nil, err
	}
	byId := make(map[uint]*model.FoodItem, len(foods))
	for i := range foods {
		byId[foods[i].ID] = &foods[i]
	}

	items := make([]model.BookingItem, 0, len(inputs))
	for _, input := range inputs {
		food, ok := byId[input.FoodItemId]
		if !ok {
			return total, nil, &model.NotFoundError{Resource: "foodItem", Key: input.FoodItemId}
		}
		if !food.IsAvailable {
			return total, nil, &model.ValidationError{
				Field:   "items",
				Message: "món " + food.Name + " hiện ngừng bán",
			}
		}

		lineTotal := food.Price.Mul(decimal.NewFromInt(int64(input.Quantity)))
		total = total.Add(lineTotal)
		items = append(items, model.BookingItem{
			FoodItemId: food.ID,
			Quantity:   input.Quantity,
			UnitPrice:  food.Price,
		})
	}

	return total, items, nil
}

// GetMyBookings danh sách đơn của khách đang đăng nhập.
// Có limit + page thì trả trang kèm totalCount, không thì trả cả danh sách.
func GetMyBookings(c *fiber.Ctx) error {
	customer, err := helper.GetCustomerFromToken(c)
	if err != nil {
		return utils.RespondError(c, err)
	}

	paging := model.Pagination{}
	if limit := c.QueryInt("limit", 0); limit > 0 {
		paging.Limit = utils.Ptr(limit)
	}
	if page := c.QueryInt("page", 0); page > 0 {
		paging.Page = utils.Ptr(page)
	}

	query := database.DB.
		Preload("Seats").
		Preload("Items.FoodItem").
		Preload("Showtime").
		Preload("Showtime.Movie").
		Preload("Showtime.Room").
		Preload("Showtime.Room.Cinema").
		Where("customer_id = ?", customer.ID).
		Order("created_at desc")
	query = utils.ApplyPagination(query, paging.Limit, paging.Page)

	var bookings []model.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi tải đơn đặt vé", err)
	}

	response := make([]fiber.Map, 0, len(bookings))
	for i := range bookings {
		response = append(response, buildBookingResponse(&bookings[i]))
	}

	if paging.Limit != nil && paging.Page != nil {
		var totalCount int64
		if err := database.DB.Model(&model.Booking{}).
			Where("customer_id = ?", customer.ID).
			Count(&totalCount).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi tải đơn đặt vé", err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
			Rows:       response,
			Limit:      paging.Limit,
			Page:       paging.Page,
			TotalCount: totalCount,
		})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GetBookingDetail chi tiết đơn theo mã công khai, kèm QR check-in
func GetBookingDetail(c *fiber.Ctx) error {
	customer, err := helper.GetCustomerFromToken(c)
	if err != nil {
		return utils.RespondError(c, err)
	}

	bookingCode := c.Params("bookingCode")

	var booking model.Booking
	if err := database.DB.
		Preload("Seats").
		Preload("Items.FoodItem").
		Preload("Showtime").
		Preload("Showtime.Movie").
		Preload("Showtime.Room").
		Preload("Showtime.Room.Cinema").
		Where("public_code = ? AND customer_id = ?", bookingCode, customer.ID).
		First(&booking).Error; err != nil {
		return utils.RespondError(c, &model.NotFoundError{Resource: "booking", Key: bookingCode})
	}

	response := buildBookingResponse(&booking)

	qrBytes, err := utils.GenerateQRCode(booking.PublicCode, 400)
	if err != nil {
		log.Printf("Lỗi tạo QR cho đơn %s: %v", booking.PublicCode, err)
	} else {
		response["qrCode"] = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// CancelBooking khách hủy đơn của chính mình, chỉ trước giờ chiếu
func CancelBooking(c *fiber.Ctx) error {
	customer, err := helper.GetCustomerFromToken(c)
	if err != nil {
		return utils.RespondError(c, err)
	}

	bookingCode := c.Params("bookingCode")
	db := database.DB

	var booking model.Booking
	if err := db.Preload("Showtime").
		Where("public_code = ? AND customer_id = ?", bookingCode, customer.ID).
		First(&booking).Error; err != nil {
		return utils.RespondError(c, &model.NotFoundError{Resource: "booking", Key: bookingCode})
	}

	if booking.Status != model.BookingPending && booking.Status != model.BookingConfirmed {
		return utils.RespondError(c, &model.InvalidStateTransitionError{
			BookingCode: booking.PublicCode,
			From:        booking.Status,
			To:          model.BookingCancelled,
		})
	}

	if !helper.Clock.Now().Before(booking.Showtime.StartTime) {
		return utils.RespondError(c, &model.ShowtimeNotAvailableError{
			ShowtimeId: booking.ShowtimeId,
			Reason:     constants.REASON_ALREADY_STARTED,
		})
	}

	now := helper.Clock.Now()
	ok, err := helper.TransitionBookingStatus(db, booking.ID, booking.Status, model.BookingCancelled,
		map[string]any{"cancelled_at": now})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Hủy đơn thất bại", err)
	}
	if !ok {
		// Sweeper hoặc một request khác vừa đổi trạng thái trước ta
		db.First(&booking, booking.ID)
		if booking.Status == model.BookingExpired {
			return utils.RespondError(c, &model.BookingExpiredError{BookingCode: booking.PublicCode})
		}
		return utils.RespondError(c, &model.InvalidStateTransitionError{
			BookingCode: booking.PublicCode,
			From:        booking.Status,
			To:          model.BookingCancelled,
		})
	}

	BroadcastShowtime(booking.ShowtimeId)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":     "Hủy đơn thành công, ghế đã được giải phóng",
		"bookingCode": booking.PublicCode,
		"cancelledAt": now.Format("15:04 - 02/01/2006"),
	})
}

// bookingProjection phần vô hướng copy thẳng từ model bằng copier
type bookingProjection struct {
	PublicCode     string          `json:"bookingCode"`
	Status         string          `json:"status"`
	SeatAmount     decimal.Decimal `json:"seatAmount"`
	FoodAmount     decimal.Decimal `json:"foodAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	SeatCount      int             `json:"seatCount"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func buildBookingResponse(booking *model.Booking) fiber.Map {
	var projection bookingProjection
	if err := copier.Copy(&projection, booking); err != nil {
		log.Printf("Lỗi copy projection cho đơn %s: %v", booking.PublicCode, err)
	}

	seats := make([]string, 0, len(booking.Seats))
	for _, bs := range booking.Seats {
		seats = append(seats, bs.Label())
	}

	items := make([]fiber.Map, 0, len(booking.Items))
	for _, item := range booking.Items {
		items = append(items, fiber.Map{
			"name":      item.FoodItem.Name,
			"quantity":  item.Quantity,
			"unitPrice": item.UnitPrice,
		})
	}

	return fiber.Map{
		"booking":    projection,
		"seats":      seats,
		"items":      items,
		"movieTitle": booking.Showtime.Movie.Title,
		"movieSlug":  booking.Showtime.Movie.Slug,
		"cinema":     booking.Showtime.Room.Cinema.Name,
		"room":       booking.Showtime.Room.Name,
		"showtime":   booking.Showtime.StartTime.Format("15:04 - 02/01/2006"),
		"format":     booking.Showtime.Format,
	}
}
