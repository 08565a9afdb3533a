package router

import (
	"cinema_booking/handler"
	"cinema_booking/middleware"
	"cinema_booking/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)

	booking := v1.Group("/booking", logger.New())
	booking.Post("/", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)
	booking.Get("/", middleware.Protected(), handler.GetMyBookings)
	booking.Get("/:bookingCode", middleware.Protected(), handler.GetBookingDetail)
	booking.Post("/:bookingCode/cancel", middleware.Protected(), handler.CancelBooking)
	booking.Post("/:bookingCode/confirm", middleware.Protected(), validate.ConfirmBooking(), handler.ConfirmBooking)
	booking.Post("/:bookingCode/complete", middleware.Protected(), handler.CompleteBooking)

	showtime := v1.Group("/showtime", logger.New())
	showtime.Get("/:showtimeId/seats", validate.GetById("showtimeId"), handler.GetShowtimeSeats)
	showtime.Get("/:showtimeId/reserved-seats", validate.GetById("showtimeId"), handler.GetReservedSeats)

	ws := app.Group("/ws")
	ws.Get("/seats/:showtimeId", websocket.New(handler.SeatWebsocket))
}
