// Package notification delivers out-of-band confirmations for consultation
// bookings.
package notification

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/greenflow-inc/greenflow/internal/shared/config"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
)

// SMTPNotifier sends booking confirmations over SMTP.
type SMTPNotifier struct {
	cfg    config.EmailConfig
	dialer *gomail.Dialer
	logger logger.Interface
}

// NewSMTPNotifier creates the SMTP-backed notifier.
func NewSMTPNotifier(cfg config.EmailConfig, log logger.Interface) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: log,
	}
}

// NotifyBooked emails the requester their booking reference.
func (n *SMTPNotifier) NotifyBooked(name, email string, requestID uint64) error {
	subject := "Your GreenFlow consultation is booked"
	plainBody := fmt.Sprintf(`Hi %s,

Thanks for booking a consultation with GreenFlow. Your booking reference is #%d.

One of our hydroponics experts will reach out within one business day.

The GreenFlow Team
`, name, requestID)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Consultation booked</h2>
			<p>Hi %s,</p>
			<p>Thanks for booking a consultation with GreenFlow. Your booking reference is <strong>#%d</strong>.</p>
			<p>One of our hydroponics experts will reach out within one business day.</p>
			<p>The GreenFlow Team</p>
		</body>
		</html>
	`, name, requestID)

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send booking confirmation: %w", err)
	}

	n.logger.Infow("booking confirmation sent", "request_id", requestID)
	return nil
}

// NoopNotifier is used when outbound email is not configured. It only logs.
type NoopNotifier struct {
	logger logger.Interface
}

// NewNoopNotifier creates the logging-only notifier.
func NewNoopNotifier(log logger.Interface) *NoopNotifier {
	return &NoopNotifier{logger: log}
}

func (n *NoopNotifier) NotifyBooked(_, _ string, requestID uint64) error {
	n.logger.Debugw("email disabled, skipping booking confirmation", "request_id", requestID)
	return nil
}
