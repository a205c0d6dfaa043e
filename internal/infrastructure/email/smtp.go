package email

import (
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/gomail.v2"

	"rannaghore/internal/shared/config"
	"rannaghore/internal/shared/logger"
)

// SMTPMailer delivers storefront emails over SMTP. Send methods report
// success as a flag, never as an error, so a broken mail server cannot fail
// a checkout or a ticket submission. The plain-send path honors the strict
// config: non-strict swallows transport failures, strict surfaces them.
type SMTPMailer struct {
	cfg       config.EmailConfig
	dialer    *gomail.Dialer
	stripTags *bluemonday.Policy
	logger    logger.Interface
}

func NewSMTPMailer(cfg config.EmailConfig, log logger.Interface) *SMTPMailer {
	return &SMTPMailer{
		cfg:       cfg,
		dialer:    gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		stripTags: bluemonday.StrictPolicy(),
		logger:    log,
	}
}

func (m *SMTPMailer) SendPlain(to, subject, body string) bool {
	msg := m.newMessage(to, subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		if m.cfg.Strict {
			m.logger.Error("failed to send email", "to", to, "subject", subject, "error", err)
			return false
		}
		m.logger.Warn("failed to send email", "to", to, "subject", subject, "error", err)
		return true
	}
	return true
}

func (m *SMTPMailer) SendHTML(to, subject, htmlBody string) bool {
	msg := m.newMessage(to, subject)
	// Plain alternative for clients that refuse HTML.
	msg.SetBody("text/plain", m.stripTags.Sanitize(htmlBody))
	msg.AddAlternative("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Warn("failed to send HTML email", "to", to, "subject", subject, "error", err)
		return false
	}
	return true
}

func (m *SMTPMailer) SendWithAttachment(to, subject, body, attachmentPath string) bool {
	msg := m.newMessage(to, subject)
	msg.SetBody("text/plain", body)
	msg.Attach(attachmentPath)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Warn("failed to send email with attachment", "to", to, "subject", subject, "error", err)
		return false
	}
	return true
}

func (m *SMTPMailer) newMessage(to, subject string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.FromAddress, m.cfg.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	return msg
}
