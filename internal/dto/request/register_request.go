package request

// RegisterRequest 用户注册请求
// 使用位置:
//   - internal/handler/auth_handler.go: Register
//   - internal/service/user/service.go: Register
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Nickname string `json:"nickname" binding:"required"`
	OtpCode  string `json:"otp_code" binding:"required,len=6"`
}
