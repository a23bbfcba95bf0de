package constants

const (
	CHANNEL_SIZE               = 100 // 通道大小
	REDIS_TIMEOUT              = 1   // redis timeout (分钟)
	REFRESH_TOKEN_EXPIRY_HOURS = 168 // Refresh Token 有效期（小时），168小时 = 7天

	INVITE_CODE_EXPIRY_HOURS = 168 // 邀请码有效期（小时），7天
	OTP_EXPIRY_MINUTES       = 10  // 邮箱验证码有效期（分钟）
	OTP_RESEND_COOLDOWN_SEC  = 60  // 邮箱验证码重发冷却（秒）

	MESSAGE_PAGE_DEFAULT_LIMIT = 50 // 消息分页默认条数

	GROUP_CAS_MAX_RETRY = 3 // 群组版本号 CAS 冲突最大重试次数
)
