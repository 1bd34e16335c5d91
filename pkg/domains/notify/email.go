package notify

import (
	"context"
	"fmt"
	"strconv"

	"github.com/staybluo/pkg/config"
	"gopkg.in/gomail.v2"
)

// SMTPSender sends plain-text mail with the transport settings from config.
// Configuration is checked per send, so a partially configured deployment
// fails the dispatch instead of failing startup.
type SMTPSender struct {
	cfg config.Mail
}

func NewSMTPSender(cfg config.Mail) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) SendMail(ctx context.Context, to, subject, body string) error {
	if s.cfg.Host == "" || s.cfg.Port == "" || s.cfg.User == "" || s.cfg.Pass == "" {
		return fmt.Errorf("%w: mail host, port, user and password are all required", ErrNotConfigured)
	}

	port, err := strconv.Atoi(s.cfg.Port)
	if err != nil {
		return fmt.Errorf("%w: invalid mail port %q", ErrNotConfigured, s.cfg.Port)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.User)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	dialer := gomail.NewDialer(s.cfg.Host, port, s.cfg.User, s.cfg.Pass)
	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
