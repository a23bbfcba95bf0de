package email

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	myredis "quanzi_server/internal/dao/redis"
	"quanzi_server/pkg/constants"
	"quanzi_server/pkg/errorx"
	"quanzi_server/pkg/util/random"
)

// otpService 邮箱验证码服务实现
// 验证码和冷却标记都存 Redis，多实例部署时状态共享
type otpService struct {
	sender Sender
	cache  myredis.CacheService
}

// NewEmailService 创建邮箱验证码服务实例
func NewEmailService(sender Sender, cache myredis.CacheService) EmailService {
	return &otpService{sender: sender, cache: cache}
}

func otpCodeKey(email string) string {
	return "otp_code_" + email
}

func otpCooldownKey(email string) string {
	return "otp_cooldown_" + email
}

// SendVerificationCode 发送 6 位数字验证码
// 冷却检查 -> 生成 -> 预存缓存 -> 发送，发送失败回滚缓存占位
func (s *otpService) SendVerificationCode(email string) error {
	ctx := context.Background()

	// 冷却期检查
	cooldown, err := s.cache.Get(ctx, otpCooldownKey(email))
	if err != nil {
		zap.L().Error("缓存冷却检查异常", zap.Error(err), zap.String("email", email))
		return errorx.ErrServerBusy
	}
	if cooldown != "" {
		return errorx.New(errorx.CodeRateLimit, "验证码发送过于频繁，请稍后重试")
	}

	code := strconv.Itoa(random.GetRandomInt(6))

	// 先占位后发送，避免高并发下绕过频率限制
	if err := s.cache.Set(ctx, otpCodeKey(email), code,
		time.Duration(constants.OTP_EXPIRY_MINUTES)*time.Minute); err != nil {
		zap.L().Error("缓存写入验证码失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if err := s.cache.Set(ctx, otpCooldownKey(email), "1",
		time.Duration(constants.OTP_RESEND_COOLDOWN_SEC)*time.Second); err != nil {
		zap.L().Error("缓存写入冷却标记失败", zap.Error(err))
		return errorx.ErrServerBusy
	}

	subject := "圈子社区邮箱验证码"
	body := fmt.Sprintf("您的验证码是 %s，%d 分钟内有效。如非本人操作请忽略本邮件。",
		code, constants.OTP_EXPIRY_MINUTES)
	if err := s.sender.Send(email, subject, body); err != nil {
		zap.L().Error("验证码邮件发送失败", zap.Error(err), zap.String("email", email))
		// 回滚占位，否则用户冷却期内无法重发
		_ = s.cache.Delete(ctx, otpCodeKey(email))
		_ = s.cache.Delete(ctx, otpCooldownKey(email))
		return errorx.ErrServerBusy
	}

	return nil
}

// VerifyCode 校验验证码，成功后立即删除防止重放
func (s *otpService) VerifyCode(email string, code string) error {
	ctx := context.Background()

	stored, err := s.cache.Get(ctx, otpCodeKey(email))
	if err != nil {
		zap.L().Error("缓存读取验证码异常", zap.Error(err), zap.String("email", email))
		return errorx.ErrServerBusy
	}
	if stored == "" {
		return errorx.New(errorx.CodeInvalidParam, "验证码已过期，请重新获取")
	}
	if stored != code {
		return errorx.New(errorx.CodeInvalidParam, "验证码错误")
	}

	_ = s.cache.Delete(ctx, otpCodeKey(email))
	return nil
}

var _ EmailService = (*otpService)(nil)
