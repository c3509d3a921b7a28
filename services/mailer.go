package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

type Mail struct {
	To      string
	From    string
	Subject string
	HTML    string
}

// Mailer delivers asynchronously from the caller's point of view; a failed
// send must never fail the operation that triggered it.
type Mailer interface {
	Send(m Mail) error
}

type SMTPMailer struct {
	Addr     string // host:port
	Host     string
	Username string
	Password string
}

func (s *SMTPMailer) Send(m Mail) error {
	var auth smtp.Auth
	if s.Username != "" {
		auth = smtp.PlainAuth("", s.Username, s.Password, s.Host)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.From)
	fmt.Fprintf(&b, "To: %s\r\n", m.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", m.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(m.HTML)

	return smtp.SendMail(s.Addr, auth, m.From, []string{m.To}, []byte(b.String()))
}

// LogMailer stands in when no SMTP server is configured.
type LogMailer struct {
	Log *zap.Logger
}

func (l *LogMailer) Send(m Mail) error {
	l.Log.Info("mail not sent, no SMTP configured",
		zap.String("to", m.To),
		zap.String("subject", m.Subject),
	)
	return nil
}
