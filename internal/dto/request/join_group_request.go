package request

// JoinGroupRequest 申请入群请求
// 使用位置:
//   - internal/handler/group_handler.go: RequestJoin
type JoinGroupRequest struct {
	Message string `json:"message" binding:"max=200"`
}
