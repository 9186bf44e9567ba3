// services/email.go
package services

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type smtpEmailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailSenderFromEnv builds the email capability from SMTP_* env vars.
// Without SMTP_HOST the simulated sender is returned, so environments
// without credentials keep working.
func NewEmailSenderFromEnv() EmailSender {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Println("SMTP_HOST not set, emails will be simulated")
		return &simulatedEmailSender{}
	}

	port := 587
	if env := os.Getenv("SMTP_PORT"); env != "" {
		if p, err := strconv.Atoi(env); err == nil {
			port = p
		}
	}

	from := os.Getenv("FROM_EMAIL")
	if from == "" {
		from = "noreply@foxfood.fr"
	}

	return &smtpEmailSender{
		dialer: gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD")),
		from:   from,
	}
}

func (s *smtpEmailSender) Send(msg EmailMessage) ChannelResult {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Printf("Failed to send email to %s: %v", msg.To, err)
		return ChannelResult{Error: err.Error()}
	}
	return ChannelResult{Success: true}
}

type simulatedEmailSender struct{}

func (s *simulatedEmailSender) Send(msg EmailMessage) ChannelResult {
	log.Printf("Simulated email to %s: %s", msg.To, msg.Subject)
	return ChannelResult{Success: true, Simulated: true}
}
