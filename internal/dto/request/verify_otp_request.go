package request

// VerifyOtpRequest 校验邮箱验证码请求
// 使用位置:
//   - internal/handler/auth_handler.go: VerifyOtp
type VerifyOtpRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}
