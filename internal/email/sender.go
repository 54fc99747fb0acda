package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/brightpath/care-api/internal/config"
)

// Sender delivers plain-text notices over SMTP.
type Sender interface {
	Send(to, subject, body string) error
}

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

type noopSender struct{}

// NewSender returns an SMTP sender, or a no-op sender when email
// delivery is disabled in config.
func NewSender(cfg config.EmailConfig) Sender {
	if !cfg.Enabled {
		return noopSender{}
	}
	return &smtpSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (noopSender) Send(string, string, string) error {
	return nil
}
