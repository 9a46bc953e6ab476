package services

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

// ResetMailer delivers password reset links over the same SMTP
// transport the leave notifier uses.
type ResetMailer struct {
	smtp SMTPConfig
	send func(message *gomail.Message) error
}

func NewResetMailer(smtp SMTPConfig) *ResetMailer {
	mailer := &ResetMailer{smtp: smtp}
	mailer.send = func(message *gomail.Message) error {
		dialer := gomail.NewDialer(smtp.Host, smtp.Port, smtp.Username, smtp.Password)
		dialer.SSL = smtp.Port == 465
		return dialer.DialAndSend(message)
	}
	return mailer
}

func (mailer *ResetMailer) Configured() bool {
	return mailer.smtp.Configured()
}

func (mailer *ResetMailer) SendResetLink(recipient string, resetURL string) error {
	if !mailer.smtp.Configured() {
		return ErrSMTPNotConfigured
	}

	var body bytes.Buffer
	if err := resetMailTemplate.Execute(&body, struct{ ResetURL string }{ResetURL: resetURL}); err != nil {
		return fmt.Errorf("render reset mail: %w", err)
	}

	message := gomail.NewMessage()
	message.SetAddressHeader("From", mailer.smtp.Username, "Hadir")
	message.SetHeader("To", recipient)
	message.SetHeader("Subject", "Atur Ulang Kata Sandi")
	message.SetBody("text/html", body.String())
	return mailer.send(message)
}

var resetMailTemplate = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Atur Ulang Kata Sandi</h2>
  <p>Kami menerima permintaan untuk mengatur ulang kata sandi akun Anda.</p>
  <p><a href="{{.ResetURL}}" style="display: inline-block; padding: 10px 20px; background-color: #2563eb; color: #fff; text-decoration: none; border-radius: 6px;">Atur Ulang Kata Sandi</a></p>
  <p>Tautan ini berlaku selama 30 menit. Abaikan email ini jika Anda tidak meminta pengaturan ulang.</p>
</body>
</html>`))
