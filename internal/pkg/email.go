package pkg

import (
	"crypto/tls"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string // 发件账号
	Password string // 授权码
	From     string // 展示的发件人，可与账号不同
}

// Mailer 站内通知邮件出口，目前只有验证码一种邮件
type Mailer struct {
	cfg SMTPConfig
}

func NewMailer(cfg SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	d.TLSConfig = &tls.Config{ServerName: m.cfg.Host}
	return d.DialAndSend(msg)
}

// SendCodeMail 发验证码邮件。action 是"注册验证"/"重置密码"这类操作名。
func (m *Mailer) SendCodeMail(to, action, code string, ttl time.Duration) error {
	subject := fmt.Sprintf("【Lee Blog】%s验证码", action)
	body := fmt.Sprintf(
		`<p>你正在 Lee Blog 进行%s。</p><p>本次验证码：<b style="font-size:20px;letter-spacing:2px;">%s</b></p><p>%d 分钟内有效，请勿转发。如果这不是你的操作，忽略本邮件即可。</p>`,
		action, code, int(ttl.Minutes()))
	return m.send(to, subject, body)
}
