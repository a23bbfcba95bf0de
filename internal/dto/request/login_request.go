package request

// LoginRequest 用户登录请求
// 使用位置:
//   - internal/handler/auth_handler.go: Login
//   - internal/service/user/service.go: Login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
