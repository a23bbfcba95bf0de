package repository

import (
	"time"

	"quanzi_server/internal/model"

	"gorm.io/gorm"
)

// ==================== Repository 接口定义 ====================

// UserRepository 用户数据访问接口
type UserRepository interface {
	// FindByUuid 根据 UUID 查找用户
	FindByUuid(uuid string) (*model.UserInfo, error)
	// FindByEmail 根据邮箱查找用户
	FindByEmail(email string) (*model.UserInfo, error)
	// FindByUuids 批量根据 UUID 查找用户
	FindByUuids(uuids []string) ([]model.UserInfo, error)
	// Create 创建新用户，邮箱重复返回 CodeConflict
	Create(user *model.UserInfo) error
	// Update 更新用户信息
	Update(user *model.UserInfo) error
	// MarkEmailVerified 标记邮箱已验证
	MarkEmailVerified(uuid string) error
}

// GroupRepository 群组数据访问接口
type GroupRepository interface {
	// FindByUuid 根据 UUID 查找群组
	FindByUuid(uuid string) (*model.GroupInfo, error)
	// Create 创建新群组
	Create(group *model.GroupInfo) error
	// UpdateFields 按字段更新群组（PATCH 白名单由 Service 层控制）
	UpdateFields(uuid string, updates map[string]interface{}) error
	// CompareAndSwapVersion 版本号 CAS，命中则版本 +1 并返回 true
	// 返回 false 表示期间有并发变更，调用方应重读后重试
	CompareAndSwapVersion(uuid string, oldVersion int64) (bool, error)
	// HardDelete 物理删除群组行（不级联）
	HardDelete(uuid string) error
	// FindNearby 按坐标半径查找群组，按距离升序（隐秘群除外）
	FindNearby(lat, lng float64, radiusMeters float64, limit int) ([]model.GroupInfo, error)
	// SearchText 按名称/描述/标签模糊搜索（隐秘群除外）
	SearchText(query string, limit int) ([]model.GroupInfo, error)
	// FindByTags 按标签查找群组，排除指定群组与隐秘群
	FindByTags(tags []string, excludeUuids []string, limit int) ([]model.GroupInfo, error)
}

// ==================== 复合结构 ====================

// GroupMemberWithUserInfo 群成员详细信息（含用户资料）
type GroupMemberWithUserInfo struct {
	UserId   string `json:"userId"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
}

// GroupMemberRepository 群成员数据访问接口
type GroupMemberRepository interface {
	// FindMember 查找某群组内的某成员，不存在返回 CodeNotFound
	FindMember(groupUuid, userUuid string) (*model.GroupMember, error)
	// FindMembers 查找群组全部成员
	FindMembers(groupUuid string) ([]model.GroupMember, error)
	// FindMembersWithUserInfo 查找群成员（关联用户资料）
	FindMembersWithUserInfo(groupUuid string) ([]GroupMemberWithUserInfo, error)
	// FindGroupUuidsByUser 查找用户加入的所有群组 ID
	FindGroupUuidsByUser(userUuid string) ([]string, error)
	// Create 添加群成员，重复添加返回 CodeConflict
	Create(member *model.GroupMember) error
	// UpdateRole 更新成员角色
	UpdateRole(groupUuid, userUuid string, role string) error
	// Delete 移除成员
	Delete(groupUuid, userUuid string) error
	// DeleteByGroupUuid 删除群组所有成员
	DeleteByGroupUuid(groupUuid string) error
	// CountByGroup 统计群成员数
	CountByGroup(groupUuid string) (int64, error)
}

// JoinRequestRepository 入群申请数据访问接口
type JoinRequestRepository interface {
	// Find 查找某用户对某群组的待处理申请
	Find(groupUuid, userUuid string) (*model.JoinRequest, error)
	// FindByGroup 查找群组全部待处理申请
	FindByGroup(groupUuid string) ([]model.JoinRequest, error)
	// Create 创建申请，重复申请返回 CodeConflict
	Create(request *model.JoinRequest) error
	// Delete 删除申请（审批通过或拒绝后），不存在不报错
	Delete(groupUuid, userUuid string) error
	// DeleteByGroupUuid 删除群组全部申请
	DeleteByGroupUuid(groupUuid string) error
}

// InviteCodeRepository 邀请码数据访问接口
type InviteCodeRepository interface {
	// Create 保存新邀请码
	Create(code *model.InviteCode) error
	// FindByCode 根据邀请码查找，不存在返回 CodeNotFound
	FindByCode(code string) (*model.InviteCode, error)
}

// GroupAuditRepository 群组审计日志数据访问接口
type GroupAuditRepository interface {
	// Append 追加一条审计记录
	Append(entry *model.GroupAudit) error
	// FindByGroup 按时间倒序查询群组审计记录
	FindByGroup(groupUuid string, limit int) ([]model.GroupAudit, error)
}

// ConversationRepository 单聊会话数据访问接口
type ConversationRepository interface {
	// FindByUuid 根据会话 UUID 查找
	FindByUuid(uuid string) (*model.Conversation, error)
	// FindByPair 根据规整后的用户对查找，不存在返回 CodeNotFound
	FindByPair(userOneId, userTwoId string) (*model.Conversation, error)
	// Create 创建会话，唯一键冲突返回 CodeConflict（并发首建时回查）
	Create(conversation *model.Conversation) error
	// FindByUser 查找用户参与的全部会话，按最近消息时间倒序
	FindByUser(userUuid string) ([]model.Conversation, error)
	// TouchLastMessage 更新会话最近消息时间
	TouchLastMessage(uuid string, at time.Time) error
}

// MessageRepository 单聊消息数据访问接口
type MessageRepository interface {
	// Create 追加消息
	Create(message *model.Message) error
	// FindBefore 倒序分页：取 before 之前的 limit 条
	// created_at 相同的记录按雪花 ID 倒序，保证翻页不重不漏
	FindBefore(conversationUuid string, before time.Time, limit int) ([]model.Message, error)
	// FindLatest 取会话最新一条消息，用于会话列表摘要
	FindLatest(conversationUuid string) (*model.Message, error)
}

// GroupChatRepository 群聊容器数据访问接口
type GroupChatRepository interface {
	// FindByGroupUuid 根据群组查找群聊，不存在返回 CodeNotFound
	FindByGroupUuid(groupUuid string) (*model.GroupChat, error)
	// Create 创建群聊，唯一键冲突返回 CodeConflict（并发首建时回查）
	Create(chat *model.GroupChat) error
	// TouchLastMessage 更新群聊最近消息时间
	TouchLastMessage(uuid string, at time.Time) error
}

// GroupMessageRepository 群聊消息数据访问接口
type GroupMessageRepository interface {
	// Create 追加消息
	Create(message *model.GroupMessage) error
	// FindBefore 倒序分页，语义同 MessageRepository.FindBefore
	FindBefore(groupUuid string, before time.Time, limit int) ([]model.GroupMessage, error)
}

// EventRepository 活动数据访问接口
type EventRepository interface {
	// FindByUuid 根据 UUID 查找活动
	FindByUuid(uuid string) (*model.EventInfo, error)
	// FindByGroup 查找群组全部活动，按开始时间升序
	FindByGroup(groupUuid string) ([]model.EventInfo, error)
	// Create 创建活动
	Create(event *model.EventInfo) error
	// UpsertRsvp 写入报名状态，同一 (活动,用户) 重复提交覆盖状态
	UpsertRsvp(rsvp *model.EventRsvp) error
	// FindRsvpsByEvent 查找活动全部报名记录
	FindRsvpsByEvent(eventUuid string) ([]model.EventRsvp, error)
}

// ==================== Repository 聚合 ====================

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db           *gorm.DB
	User         UserRepository
	Group        GroupRepository
	GroupMember  GroupMemberRepository
	JoinRequest  JoinRequestRepository
	InviteCode   InviteCodeRepository
	GroupAudit   GroupAuditRepository
	Conversation ConversationRepository
	Message      MessageRepository
	GroupChat    GroupChatRepository
	GroupMessage GroupMessageRepository
	Event        EventRepository
}

// NewRepositories 创建所有 Repository 实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:           db,
		User:         NewUserRepository(db),
		Group:        NewGroupRepository(db),
		GroupMember:  NewGroupMemberRepository(db),
		JoinRequest:  NewJoinRequestRepository(db),
		InviteCode:   NewInviteCodeRepository(db),
		GroupAudit:   NewGroupAuditRepository(db),
		Conversation: NewConversationRepository(db),
		Message:      NewMessageRepository(db),
		GroupChat:    NewGroupChatRepository(db),
		GroupMessage: NewGroupMessageRepository(db),
		Event:        NewEventRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚。
// 未挂接数据库时（测试注入假实现的场景）直接执行函数体。
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := NewRepositories(tx)
		return fn(txRepos)
	})
}
