package ioc

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"gitee.com/flycash/review-reminder/internal/service/channel"

	"github.com/gotomicro/ego/core/econf"
)

type smtpConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// smtpMailer 直连 SMTP 网关的 Mailer 实现
type smtpMailer struct {
	cfg smtpConfig
}

func InitMailer() channel.Mailer {
	var cfg smtpConfig
	err := econf.UnmarshalKey("email", &cfg)
	if err != nil {
		panic(err)
	}
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) Deliver(_ context.Context, to, subject, body string, html bool) error {
	contentType := "text/plain"
	if html {
		contentType = "text/html"
	}
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\nContent-Type: %s; charset=\"utf-8\"\r\n\r\n", contentType)
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg.String()))
}
