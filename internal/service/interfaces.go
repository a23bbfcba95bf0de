// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"time"

	"quanzi_server/internal/dto/request"
	"quanzi_server/internal/dto/respond"
)

// UserService 用户业务接口
// 处理注册、登录、令牌刷新与邮箱验证码
type UserService interface {
	// SendOtp 发送邮箱验证码
	SendOtp(email string) error
	// VerifyOtp 校验邮箱验证码，成功即消费
	VerifyOtp(email, code string) error
	// Register 邮箱注册，需携带有效验证码
	Register(req request.RegisterRequest) (*respond.RegisterRespond, error)
	// Login 密码登录，返回 access token 与 refresh token
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// Refresh 用 refresh token 换新的 access token（单会话，旧 refresh token 作废）
	Refresh(refreshToken string) (*respond.LoginRespond, error)
	// Logout 注销，作废当前 refresh token
	Logout(userId string) error
}

// GroupService 群组业务接口
// 处理群组生命周期、成员管理、入群审批、邀请码与审计日志
type GroupService interface {
	// CreateGroup 创建群组，创建者成为 owner
	CreateGroup(ownerId string, req request.CreateGroupRequest) (*respond.GroupInfoRespond, error)
	// GetGroup 获取群组详情；管理员视角附带待审批申请
	GetGroup(viewerId, groupId string) (*respond.GroupDetailRespond, error)
	// UpdateGroup 按白名单字段更新群组（admin 以上）
	UpdateGroup(actorId, groupId string, req request.UpdateGroupRequest) error
	// DeleteGroup 删除群组及其成员与申请（admin 以上）
	DeleteGroup(actorId, groupId string) error
	// LeaveGroup 退出群组（owner 不可退出，只能删群）
	LeaveGroup(userId, groupId string) error
	// RequestJoin 申请入群；公开群直接加入（joined=true），私密群进入审批队列
	RequestJoin(userId, groupId string, message string) (joined bool, err error)
	// ApproveJoin 审批通过入群申请（admin 以上）
	ApproveJoin(actorId, groupId, targetId string) error
	// RejectJoin 拒绝入群申请（admin 以上）
	RejectJoin(actorId, groupId, targetId string) error
	// KickMember 移除成员，要求操作者角色严格高于目标
	KickMember(actorId, groupId, targetId string) error
	// PromoteMember 提升成员为 admin，要求操作者角色严格高于目标
	PromoteMember(actorId, groupId, targetId string) error
	// GenerateInviteCode 生成群组邀请码（admin 以上），多次可用，7 天有效
	GenerateInviteCode(actorId, groupId string) (*respond.InviteCodeRespond, error)
	// JoinByInvite 凭邀请码直接入群，绕过审批
	JoinByInvite(userId, code string) (groupId string, err error)
	// GetAuditLog 查询群组审计日志（admin 以上）
	GetAuditLog(actorId, groupId string) ([]respond.AuditEntryRespond, error)
}

// ChatService 聊天业务接口
// 处理单聊会话、单聊消息与群聊消息
type ChatService interface {
	// GetOrCreateConversation 获取或首建与对方的单聊会话
	GetOrCreateConversation(userId, otherUserId string) (*respond.ConversationRespond, error)
	// ListConversations 获取我的会话列表，按最近消息时间倒序
	ListConversations(userId string) ([]respond.ConversationRespond, error)
	// SendPrivateMessage 发送单聊消息
	SendPrivateMessage(userId, conversationUuid string, req request.SendMessageRequest) (*respond.MessageRespond, error)
	// ListPrivateMessages 倒序分页拉取单聊消息
	ListPrivateMessages(userId, conversationUuid string, before time.Time, limit int) ([]respond.MessageRespond, error)
	// SendGroupMessage 发送群聊消息
	SendGroupMessage(userId, groupUuid string, req request.SendMessageRequest) (*respond.MessageRespond, error)
	// ListGroupMessages 倒序分页拉取群聊消息
	ListGroupMessages(userId, groupUuid string, before time.Time, limit int) ([]respond.MessageRespond, error)
}

// EventService 群组活动业务接口
type EventService interface {
	// CreateEvent 创建群组活动（admin 以上）
	CreateEvent(actorId, groupId string, req request.CreateEventRequest) (*respond.EventRespond, error)
	// ListEvents 查询群组活动列表（仅群成员）
	ListEvents(viewerId, groupId string) ([]respond.EventRespond, error)
	// Rsvp 提交/变更活动报名状态（仅群成员）
	Rsvp(userId, eventId string, status string) error
}

// RecommendService 发现与推荐业务接口
type RecommendService interface {
	// RecommendForUser 按兴趣标签推荐未加入的群组
	RecommendForUser(userId string, limit int) ([]respond.GroupInfoRespond, error)
	// SearchText 按关键词搜索群组
	SearchText(query string, limit int) ([]respond.GroupInfoRespond, error)
	// FindNearby 按坐标半径查找附近群组
	FindNearby(lat, lng, radiusMeters float64, limit int) ([]respond.GroupInfoRespond, error)
}
