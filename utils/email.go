package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/smtp"
	"os"
	"strconv"

	jwemail "github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// BookingConfirmationData feeds the confirmation email template.
type BookingConfirmationData struct {
	BookingCode   string
	MovieTitle    string
	TheaterName   string
	Showtime      string
	Seats         string
	TotalPrice    float64
	Description   string
	PaymentMethod string
	DetailLink    string
}

const confirmationTemplate = `
<html>
<body style="font-family: Arial, sans-serif;">
  <h2>Booking confirmed</h2>
  <p>Booking code: <b>{{.BookingCode}}</b></p>
  <p>{{.MovieTitle}} at {{.TheaterName}}<br>
     {{.Showtime}}<br>
     Seats: {{.Seats}}</p>
  <p>{{.Description}}</p>
  <p>Total: <b>{{printf "%.2f" .TotalPrice}} EGP</b> ({{.PaymentMethod}})</p>
  <p>Show this code at the entrance:</p>
  <img src="cid:qr_checkin_code" alt="QR" width="200">
  <p><a href="{{.DetailLink}}">View your booking</a></p>
</body>
</html>`

// SendBookingConfirmationEmail renders and sends the confirmation email with
// the booking QR embedded inline. Failures are logged only; email delivery is
// best-effort and never affects the booking itself.
func SendBookingConfirmationEmail(to string, data BookingConfirmationData) {
	host := os.Getenv("SMTP_HOST")
	if host == "" || to == "" {
		return
	}

	tmpl, err := template.New("confirmation").Parse(confirmationTemplate)
	if err != nil {
		log.Printf("email: parse template: %v", err)
		return
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		log.Printf("email: render template: %v", err)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your movie tickets - "+data.BookingCode)
	m.SetBody("text/html", body.String())

	qrBytes, err := GenerateQRCode(data.BookingCode, 400)
	if err != nil {
		log.Printf("email: generate QR: %v", err)
	} else {
		m.Embed("qr_checkin.png",
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrBytes)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type":        {"image/png"},
				"Content-ID":          {"<qr_checkin_code>"},
				"Content-Disposition": {"inline"},
			}),
		)
	}

	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	d := gomail.NewDialer(host, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		log.Printf("email: send confirmation to %s: %v", to, err)
	}
}

// SendPasswordResetEmail sends the plain-text reset link.
func SendPasswordResetEmail(to, resetLink string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return fmt.Errorf("SMTP_HOST not configured")
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	e := jwemail.NewEmail()
	e.From = os.Getenv("SMTP_FROM")
	e.To = []string{to}
	e.Subject = "Password reset"
	e.Text = []byte(fmt.Sprintf("Click the link to reset your password: %s\nThe link expires in 1 hour.", resetLink))

	auth := smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), host)
	return e.Send(host+":"+port, auth)
}
