package respond

// EventRespond 活动条目
// 使用位置:
//   - internal/service/event/service.go
type EventRespond struct {
	Uuid        string `json:"uuid"`
	GroupUuid   string `json:"group_uuid"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartAt     string `json:"start_at"`
	EndAt       string `json:"end_at,omitempty"`
	CreatedBy   string `json:"created_by"`

	// 报名统计
	GoingCnt      int `json:"going_cnt"`
	InterestedCnt int `json:"interested_cnt"`
}
