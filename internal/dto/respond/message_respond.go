package respond

// MessageRespond 消息条目（单聊与群聊共用）
// Id 使用字符串形式的雪花 ID，避免前端 JS 精度丢失
// 使用位置:
//   - internal/service/chat/service.go
type MessageRespond struct {
	Id               string   `json:"id"`
	ConversationUuid string   `json:"conversation_uuid,omitempty"`
	GroupUuid        string   `json:"group_uuid,omitempty"`
	SenderUuid       string   `json:"sender_uuid"`
	Content          string   `json:"content"`
	Attachments      []string `json:"attachments"`
	CreatedAt        string   `json:"created_at"`
}
