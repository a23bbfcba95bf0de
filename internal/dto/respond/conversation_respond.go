package respond

// ConversationRespond 会话条目，含最新消息摘要
// 使用位置:
//   - internal/service/chat/service.go: ListConversations
type ConversationRespond struct {
	Uuid          string `json:"uuid"`
	OtherUserId   string `json:"other_user_id"`
	LastMessage   string `json:"last_message,omitempty"`
	LastMessageAt string `json:"last_message_at,omitempty"`
}
