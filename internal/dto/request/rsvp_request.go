package request

// RsvpRequest 活动报名请求
// 使用位置:
//   - internal/handler/event_handler.go: Rsvp
type RsvpRequest struct {
	Status string `json:"status" binding:"required,oneof=going interested cancelled"`
}
