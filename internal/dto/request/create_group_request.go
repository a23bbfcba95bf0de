package request

// CreateGroupRequest 创建群组请求
// 使用位置:
//   - internal/handler/group_handler.go: CreateGroup
//   - internal/service/group/service.go: CreateGroup
type CreateGroupRequest struct {
	Name        string   `json:"name" binding:"required,max=50"`
	Description string   `json:"description" binding:"max=500"`
	Dp          string   `json:"dp"`
	Privacy     int8     `json:"privacy" binding:"oneof=0 1 2"`
	Tags        []string `json:"tags"`
	City        string   `json:"city"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Capacity    int      `json:"capacity" binding:"min=0"`
}
