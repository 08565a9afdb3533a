package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// BookingConfirmationData dữ liệu cho email xác nhận đặt vé
type BookingConfirmationData struct {
	BookingCode   string
	MovieName     string
	CinemaName    string
	RoomName      string
	Showtime      string
	Seats         string
	TotalAmount   string
	PaymentMethod string
}

// SendBookingConfirmationEmail gửi email xác nhận kèm QR của mã đơn (async)
func SendBookingConfirmationEmail(to string, data BookingConfirmationData) {
	go func() { // Async để không delay response
		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		if host == "" || to == "" {
			return
		}

		port, _ := strconv.Atoi(portStr)
		if port == 0 {
			port = 587
		}

		body := fmt.Sprintf(
			`<h3>Đặt vé thành công!</h3>
			<p>Mã đơn: <b>%s</b></p>
			<p>Phim: %s</p>
			<p>Rạp: %s - %s</p>
			<p>Suất chiếu: %s</p>
			<p>Ghế: %s</p>
			<p>Tổng tiền: %s đ (%s)</p>
			<p>Vui lòng đưa QR đính kèm tại quầy để check-in.</p>`,
			data.BookingCode, data.MovieName, data.CinemaName, data.RoomName,
			data.Showtime, data.Seats, data.TotalAmount, data.PaymentMethod,
		)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Xác nhận đặt vé #"+data.BookingCode)
		m.SetBody("text/html", body)

		qrBytes, err := GenerateQRCode(data.BookingCode, 400)
		if err == nil {
			filename := fmt.Sprintf("Ve_%s.png", data.BookingCode)
			m.Attach(filename, gomail.Rename(filename), gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrBytes)
				return err
			}))
		}

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Lỗi gửi email xác nhận cho %s: %v", to, err)
		} else {
			log.Printf("Email xác nhận + QR đã gửi đến %s", to)
		}
	}()
}
