package request

// SendOtpRequest 发送邮箱验证码请求
// 使用位置:
//   - internal/handler/auth_handler.go: SendOtp
type SendOtpRequest struct {
	Email string `json:"email" binding:"required,email"`
}
