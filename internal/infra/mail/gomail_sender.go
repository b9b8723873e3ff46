// Package mail implements the mail collaborator over SMTP.
package mail

import (
	"context"

	"github.com/pkg/errors"
	gomail "gopkg.in/gomail.v2"

	"github.com/EhsanulSakib/wool-e-commerce-backend/config"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/service"
)

const defaultSubject = "Email Confirmation!"

// smtpMailer sends plain-text transactional mail through gomail.
type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer is the constructor for smtpMailer.
func NewMailer(cfg *config.Config) service.Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password),
		from:   cfg.Mail.From,
	}
}

// SendMail delivers a plain-text message. The context deadline is not
// propagated into the SMTP dial; delivery runs to completion or failure.
func (m *smtpMailer) SendMail(_ context.Context, body, to, subject string) error {
	if subject == "" {
		subject = defaultSubject
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(message); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}
