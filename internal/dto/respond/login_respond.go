package respond

// LoginRespond 用户登录响应
// RefreshToken 不出现在响应体中，由 Handler 写入 http-only cookie
// 使用位置:
//   - internal/service/user/service.go: Login, Refresh
type LoginRespond struct {
	Uuid        string `json:"uuid"`
	Nickname    string `json:"nickname"`
	Email       string `json:"email"`
	Avatar      string `json:"avatar"`
	CreatedAt   string `json:"created_at"`
	AccessToken string `json:"access_token"`

	// RefreshToken 仅供 Handler 写 cookie，不序列化
	RefreshToken string `json:"-"`
}
