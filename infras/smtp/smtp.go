package smtp

//go:generate go run go.uber.org/mock/mockgen -source=./smtp.go -destination=./mocks/smtp_mock.go -package=mocks

import (
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"tm30/config"

	"github.com/rs/zerolog/log"
)

// Mail is a single outgoing message. Bodies are optional, an empty
// HTMLBody sends a plain text message only.
type Mail struct {
	To       []string
	Subject  string
	TextBody string
	HTMLBody string
}

type Mailer interface {
	Send(mail Mail) error
}

type mailerImpl struct {
	config *config.Config
}

func New(config *config.Config) Mailer {
	return &mailerImpl{
		config: config,
	}
}

func (m *mailerImpl) configured() bool {
	smtpConfig := m.config.External.SMTP

	return smtpConfig.Host != "" && smtpConfig.Port != "" && smtpConfig.Username != "" && smtpConfig.Password != ""
}

// Send delivers the message over SMTP. When SMTP is not configured it
// logs the message instead so local environments work without a relay.
func (m *mailerImpl) Send(mail Mail) error {
	if len(mail.To) == 0 {
		return fmt.Errorf("mail has no recipients")
	}

	if !m.configured() {
		log.Info().
			Strs("to", mail.To).
			Str("subject", mail.Subject).
			Msg("SMTP not configured, logging mail instead of sending")

		return nil
	}

	smtpConfig := m.config.External.SMTP
	from := fmt.Sprintf("%s <%s>", smtpConfig.FromName, smtpConfig.Username)
	auth := smtp.PlainAuth("", smtpConfig.Username, smtpConfig.Password, smtpConfig.Host)
	addr := net.JoinHostPort(smtpConfig.Host, smtpConfig.Port)

	msg := buildMessage(from, mail)

	if err := smtp.SendMail(addr, auth, smtpConfig.Username, mail.To, msg); err != nil {
		log.Error().Err(err).Strs("to", mail.To).Msg("Failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Strs("to", mail.To).Str("subject", mail.Subject).Msg("Mail sent")

	return nil
}

func buildMessage(from string, mail Mail) []byte {
	const boundary = "----=_TM30_EMAIL_BOUNDARY"

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(mail.To, ", ")))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", sanitizeHeader(mail.Subject)))
	sb.WriteString("MIME-Version: 1.0\r\n")

	if mail.HTMLBody == "" {
		sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		sb.WriteString(mail.TextBody + "\r\n")

		return []byte(sb.String())
	}

	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(mail.TextBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(mail.HTMLBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	return []byte(sb.String())
}

func sanitizeHeader(value string) string {
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\n", " ")

	return strings.TrimSpace(value)
}
