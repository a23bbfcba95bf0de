package request

import "time"

// CreateEventRequest 创建活动请求
// 使用位置:
//   - internal/handler/event_handler.go: CreateEvent
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,max=100"`
	Description string    `json:"description" binding:"max=500"`
	Location    string    `json:"location" binding:"max=200"`
	StartAt     time.Time `json:"start_at" binding:"required"`
	EndAt       time.Time `json:"end_at"`
}
