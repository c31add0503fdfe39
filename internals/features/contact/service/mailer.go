package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wneessen/go-mail"

	"thaipk_backend/internals/configs"
	"thaipk_backend/internals/features/contact/dto"
)

// Mailer sends an email copy of each contact submission to the office inbox.
// Entirely optional: leave SMTP_HOST unset and it stays off.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	from     string
	to       string
}

func NewMailerFromEnv() *Mailer {
	port, _ := strconv.Atoi(configs.GetEnv("SMTP_PORT", "587"))
	return &Mailer{
		host:     configs.GetEnv("SMTP_HOST", ""),
		port:     port,
		user:     configs.GetEnv("SMTP_USER", ""),
		password: configs.GetEnv("SMTP_PASS", ""),
		from:     configs.GetEnv("SMTP_FROM", ""),
		to:       configs.GetEnv("CONTACT_EMAIL_TO", ""),
	}
}

func (m *Mailer) Enabled() bool {
	return m != nil && m.host != "" && m.to != ""
}

func (m *Mailer) SendContactCopy(req dto.ContactRequest) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(m.to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject("แจ้งเตือนจากหน้าติดต่อเรา: " + req.Name)
	msg.SetBodyString(mail.TypeTextPlain, contactBody(req))

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.user),
		mail.WithPassword(m.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("send contact copy: %w", err)
	}
	return nil
}

func contactBody(req dto.ContactRequest) string {
	var b strings.Builder
	b.WriteString("ชื่อ: " + req.Name + "\n")
	if req.Phone != "" {
		b.WriteString("เบอร์โทร: " + req.Phone + "\n")
	}
	if req.Service != "" {
		b.WriteString("บริการที่สนใจ: " + req.Service + "\n")
	}
	if req.Message != "" {
		b.WriteString("ข้อความ:\n" + req.Message + "\n")
	}
	return b.String()
}
