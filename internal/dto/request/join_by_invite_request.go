package request

// JoinByInviteRequest 邀请码入群请求
// 使用位置:
//   - internal/handler/group_handler.go: JoinByInvite
type JoinByInviteRequest struct {
	Code string `json:"code" binding:"required,len=12"`
}
