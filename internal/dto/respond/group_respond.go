package respond

// GroupInfoRespond 群组基本信息
// 使用位置:
//   - internal/service/group/service.go
//   - internal/service/recommend/service.go
type GroupInfoRespond struct {
	Uuid        string   `json:"uuid"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Dp          string   `json:"dp"`
	OwnerId     string   `json:"owner_id"`
	Privacy     int8     `json:"privacy"`
	Tags        []string `json:"tags"`
	City        string   `json:"city"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Capacity    int      `json:"capacity"`
	PinnedPost  string   `json:"pinned_post"`
	MemberCnt   int64    `json:"member_cnt"`
	CreatedAt   string   `json:"created_at"`
}

// GroupMemberRespond 群成员条目
type GroupMemberRespond struct {
	UserId   string `json:"user_id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
}

// JoinRequestRespond 入群申请条目
type JoinRequestRespond struct {
	UserId    string `json:"user_id"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// GroupDetailRespond 群组详情，含成员与待审批申请
// 使用位置:
//   - internal/service/group/service.go: GetGroup
type GroupDetailRespond struct {
	GroupInfoRespond
	Members      []GroupMemberRespond `json:"members"`
	JoinRequests []JoinRequestRespond `json:"join_requests"`
}
