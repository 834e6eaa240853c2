// mail — отправка писем через SMTP (STARTTLS).
// Используется рассылкой напоминаний о тренировках.
package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"

	"github.com/DuongAty/workout-planner/internal/config"
)

// ErrNotConfigured — SMTP не задан в конфигурации.
var ErrNotConfigured = errors.New("smtp is not configured")

// Mailer — контракт отправки одного письма.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type smtpMailer struct {
	cfg config.SMTPConfig
}

// NewSMTP создаёт мейлер поверх net/smtp.
// Если SMTP не сконфигурирован — все вызовы Send вернут ErrNotConfigured.
func NewSMTP(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

// Send отправляет одно plain-text письмо.
// Соединение устанавливается на каждый вызов.
func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	const op = "mail.smtp.Send"

	if !m.cfg.Enabled() {
		return fmt.Errorf("%s: %w", op, ErrNotConfigured)
	}

	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)

	// net/smtp не умеет контексты; уважаем дедлайн хотя бы на dial.
	d := net.Dialer{}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("%s: %w", op, err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if m.cfg.Username != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := client.Mail(m.cfg.From); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	msg := "From: " + m.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body

	if _, err := wc.Write([]byte(msg)); err != nil {
		wc.Close()
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return client.Quit()
}
