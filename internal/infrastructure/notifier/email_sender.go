package notifier

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"waste_pickup/internal/domain/entities"
	"waste_pickup/internal/usecase/interfaces"
)

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailSender delivers email notifications over SMTP. The recipient comes from
// the notification meta ("email", then "recipient").
type EmailSender struct {
	cfg      SMTPConfig
	sendMail sendMailFunc
}

var _ interfaces.INotificationSender = (*EmailSender)(nil)

func NewEmailSender(cfg SMTPConfig) *EmailSender {
	return &EmailSender{cfg: cfg, sendMail: smtp.SendMail}
}

func (s *EmailSender) Send(ctx context.Context, n entities.Notification) (bool, error) {
	recipient := strings.TrimSpace(n.Meta["email"])
	if recipient == "" {
		recipient = strings.TrimSpace(n.Meta["recipient"])
	}
	if recipient == "" {
		log.Printf("[notification][email] skipping without recipient notification_id=%s", n.ID)
		return false, nil
	}
	if s.cfg.Host == "" {
		log.Printf("[notification][email] smtp not configured notification_id=%s", n.ID)
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	}
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	if err := s.sendMail(addr, auth, s.cfg.From, []string{recipient}, buildMessage(s.cfg.From, recipient, n)); err != nil {
		return false, fmt.Errorf("smtp send: %w", err)
	}
	return true, nil
}

func buildMessage(from, to string, n entities.Notification) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + sanitizeHeader(n.Title) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(n.Body)
	b.WriteString("\r\n")
	return []byte(b.String())
}

func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
