package request

// UpdateGroupRequest 更新群组请求
// 指针字段区分"未提交"与"提交了零值"，只有提交的字段会被更新。
// 名称与群主不在白名单内，创建后不可修改。
// 使用位置:
//   - internal/handler/group_handler.go: UpdateGroup
//   - internal/service/group/service.go: UpdateGroup
type UpdateGroupRequest struct {
	Description *string   `json:"description" binding:"omitempty,max=500"`
	Dp          *string   `json:"dp"`
	Privacy     *int8     `json:"privacy" binding:"omitempty,oneof=0 1 2"`
	Tags        *[]string `json:"tags"`
	City        *string   `json:"city"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Capacity    *int      `json:"capacity" binding:"omitempty,min=0"`
	PinnedPost  *string   `json:"pinned_post" binding:"omitempty,max=500"`
}
