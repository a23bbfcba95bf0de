package email

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"quanzi_server/internal/config"
	"quanzi_server/pkg/errorx"
)

// smtpSender 基于 gomail 的 SMTP 发送实现
type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

// Send 发送一封纯文本邮件
func (s *smtpSender) Send(to string, subject string, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return errorx.Wrapf(err, errorx.CodeServerBusy, "smtp send to %s", to)
	}
	return nil
}

// mockSender 本地开发用发送器，只打印不外发
type mockSender struct{}

func (s *mockSender) Send(to string, subject string, body string) error {
	fmt.Printf("【MockEmail】收件人: %s, 主题: %s, 内容: %s\n", to, subject, body)
	return nil
}

// shouldUseMock 未配置真实 SMTP 账号或显式指定 mock 模式时走本地打印
func shouldUseMock(smtp config.SmtpConfig) bool {
	mode := strings.ToLower(strings.TrimSpace(os.Getenv("QUANZI_SMTP_MODE")))
	if mode == "mock" || mode == "local" || mode == "test" {
		return true
	}
	host := strings.TrimSpace(smtp.Host)
	password := strings.TrimSpace(smtp.Password)
	if host == "" || password == "" {
		return true
	}
	if strings.Contains(host, "example.com") {
		return true
	}
	return false
}

// NewSender 根据配置创建邮件发送器
func NewSender() Sender {
	smtpCfg := config.GetConfig().SmtpConfig
	if shouldUseMock(smtpCfg) {
		zap.L().Warn("Email Sender 使用本地 Mock 模式（仅打印，不调用 SMTP）")
		return &mockSender{}
	}
	return &smtpSender{
		dialer: gomail.NewDialer(smtpCfg.Host, smtpCfg.Port, smtpCfg.User, smtpCfg.Password),
		from:   smtpCfg.From,
	}
}

var _ Sender = (*smtpSender)(nil)
var _ Sender = (*mockSender)(nil)
