package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender is what the usecases depend on; tests substitute a mock.
type Sender interface {
	SendSellerRequestDecision(toEmail, username string, approved bool) error
}

type SMTPSender struct {
	host     string
	port     int
	from     string
	password string
}

func NewSMTPSender(host string, port int, from, password string) *SMTPSender {
	return &SMTPSender{host: host, port: port, from: from, password: password}
}

func (s *SMTPSender) SendSellerRequestDecision(toEmail, username string, approved bool) error {
	subject := "Votre demande vendeur a été refusée"
	body := fmt.Sprintf("Bonjour %s,\n\nVotre demande pour devenir vendeur a été refusée.", username)
	if approved {
		subject = "Votre demande vendeur a été acceptée"
		body = fmt.Sprintf("Bonjour %s,\n\nVotre demande pour devenir vendeur a été acceptée. Vous pouvez désormais publier des annonces.", username)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.from, s.password)
	return d.DialAndSend(m)
}
