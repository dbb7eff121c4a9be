package facades

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/mannsoni/portfolio/internal/logger"
	"github.com/mannsoni/portfolio/internal/models"
)

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends contact notifications to the site owner's mailbox.
type SMTPMailer struct {
	host string
	port string
	user string
	pass string
	send SendFunc
}

type SMTPOpt func(*SMTPMailer)

// WithSendFunc replaces the transport, used by tests.
func WithSendFunc(fn SendFunc) SMTPOpt {
	return func(m *SMTPMailer) {
		m.send = fn
	}
}

// NewSMTPMailer returns nil when user or pass is empty, meaning mail is disabled.
func NewSMTPMailer(host, port, user, pass string, opts ...SMTPOpt) *SMTPMailer {
	if user == "" || pass == "" {
		return nil
	}

	m := &SMTPMailer{
		host: host,
		port: port,
		user: user,
		pass: pass,
		send: smtp.SendMail,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SendContactNotification mails msg from and to the configured account.
func (m *SMTPMailer) SendContactNotification(ctx context.Context, msg models.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := net.JoinHostPort(m.host, m.port)
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	body := buildNotification(m.user, msg)

	if err := m.send(addr, auth, m.user, []string{m.user}, body); err != nil {
		logger.Log.Errorw("smtp send failed", "addr", addr, "message_id", msg.ID, "error", err)
		return fmt.Errorf("send notification: %w", err)
	}

	logger.Log.Infow("contact notification sent", "message_id", msg.ID)
	return nil
}

// headerSafe drops line breaks so user input cannot add headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

func buildNotification(mailbox string, msg models.ContactMessage) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", mailbox)
	fmt.Fprintf(&b, "To: %s\r\n", mailbox)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", headerSafe(msg.Email))
	fmt.Fprintf(&b, "Subject: New Portfolio Message from %s\r\n", headerSafe(msg.Name))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "You have received a new message from %s (%s):\r\n\r\n%s\r\n", msg.Name, msg.Email, msg.Message)
	return []byte(b.String())
}
