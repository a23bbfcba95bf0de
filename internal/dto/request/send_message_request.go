package request

// SendMessageRequest 发送消息请求（单聊与群聊共用）
// Content 与 Attachments 至少填一项，由 Service 层校验
// 使用位置:
//   - internal/handler/chat_handler.go: SendPrivateMessage, SendGroupMessage
type SendMessageRequest struct {
	Content     string   `json:"content" binding:"max=5000"`
	Attachments []string `json:"attachments" binding:"max=9"`
}
