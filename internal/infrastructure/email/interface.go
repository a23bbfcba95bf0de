// Package email 提供邮箱验证码服务
// 本文件定义接口，遵循依赖倒置原则
package email

// EmailService 邮箱验证码服务接口
// Service 层应依赖此接口而非具体实现
type EmailService interface {
	// SendVerificationCode 发送邮箱验证码
	// 60 秒冷却期内重复调用返回 CodeRateLimit 错误
	SendVerificationCode(email string) error
	// VerifyCode 校验验证码，成功后验证码立即失效
	VerifyCode(email string, code string) error
}

// Sender 邮件发送器接口
// 抽象底层 SMTP 发送，便于测试时注入 mock
type Sender interface {
	Send(to string, subject string, body string) error
}
