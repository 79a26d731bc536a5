package utils

import (
	"bytes"
	"html/template"
	"log"
	"strconv"

	"horizon_booking/config"

	"gopkg.in/gomail.v2"
)

// OtpEmailData feeds the verification mail template.
type OtpEmailData struct {
	Otp           string
	ValidMinutes  int
	RecipientName string
}

// SendOtpEmail renders and sends the verification OTP mail (async so the
// signup response is not delayed by SMTP).
func SendOtpEmail(to string, subject string, data OtpEmailData) {
	go func() {
		tmpl, err := template.ParseFiles("templates/otp_email.html")
		if err != nil {
			log.Printf("failed to load otp email template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render otp email: %v", err)
			return
		}

		host := config.Config("SMTP_HOST")
		port, _ := strconv.Atoi(config.Config("SMTP_PORT"))
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")
		from := config.Config("EMAIL_USER")

		m := gomail.NewMessage()
		m.SetHeader("From", m.FormatAddress(from, "Horizon Booking"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", subject)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send otp email to %s: %v", to, err)
		}
	}()
}
