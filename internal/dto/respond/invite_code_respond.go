package respond

// InviteCodeRespond 生成邀请码响应
// 使用位置:
//   - internal/service/group/service.go: GenerateInviteCode
type InviteCodeRespond struct {
	Code      string `json:"invite_code"`
	ExpiresAt string `json:"expires_at"`
}
