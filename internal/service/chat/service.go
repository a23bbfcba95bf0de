// Package chat 实现聊天系统的核心服务层
// service.go
// 核心职责：单聊会话、单聊消息与群聊消息的业务逻辑
// 1. 会话首次建立（并发安全，唯一键兜底）
// 2. 消息写入 + 会话时间线更新（事务内）
// 3. 写库成功后向房间发布实时事件
package chat

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	myredis "quanzi_server/internal/dao/redis"

	"quanzi_server/internal/dao/mysql/repository"
	"quanzi_server/internal/dto/request"
	"quanzi_server/internal/dto/respond"
	"quanzi_server/internal/model"
	"quanzi_server/pkg/constants"
	"quanzi_server/pkg/errorx"
	"quanzi_server/pkg/util/random"
	"quanzi_server/pkg/util/snowflake"

	"go.uber.org/zap"
)

type chatService struct {
	repos  *repository.Repositories
	cache  myredis.AsyncCacheService
	broker RoomBroker
}

// NewChatService 创建聊天服务实例
func NewChatService(repos *repository.Repositories, cacheService myredis.AsyncCacheService, broker RoomBroker) *chatService {
	return &chatService{
		repos:  repos,
		cache:  cacheService,
		broker: broker,
	}
}

// wsEvent 推送给房间订阅者的事件帧
type wsEvent struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// publish 序列化事件并发布到房间，失败只记日志（消息已落库，推送尽力而为）
func (s *chatService) publish(room, event string, payload interface{}) {
	data, err := json.Marshal(wsEvent{Event: event, Payload: payload})
	if err != nil {
		zap.L().Error("marshal ws event", zap.Error(err))
		return
	}
	if err := s.broker.Publish(context.Background(), room, data); err != nil {
		zap.L().Error("publish ws event", zap.String("room", room), zap.Error(err))
	}
}

// marshalAttachments 附件列表 -> JSON 数组字符串，空列表存空串
func marshalAttachments(attachments []string) string {
	if len(attachments) == 0 {
		return ""
	}
	data, err := json.Marshal(attachments)
	if err != nil {
		zap.L().Error("marshal attachments", zap.Error(err))
		return ""
	}
	return string(data)
}

// unmarshalAttachments JSON 数组字符串 -> 附件列表
func unmarshalAttachments(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var attachments []string
	if err := json.Unmarshal([]byte(raw), &attachments); err != nil {
		zap.L().Error("unmarshal attachments", zap.Error(err))
		return []string{}
	}
	return attachments
}

// created_at 列是毫秒精度，回显必须带小数秒：
// 客户端拿最旧一条的 created_at 作下一页 before 游标，截断到秒会漏掉同一秒内未返回的消息
func privateMessageRespond(m *model.Message) respond.MessageRespond {
	return respond.MessageRespond{
		Id:               strconv.FormatInt(m.Uuid, 10),
		ConversationUuid: m.ConversationUuid,
		SenderUuid:       m.SenderUuid,
		Content:          m.Content,
		Attachments:      unmarshalAttachments(m.Attachments),
		CreatedAt:        m.CreatedAt.Format(time.RFC3339Nano),
	}
}

func groupMessageRespond(m *model.GroupMessage) respond.MessageRespond {
	return respond.MessageRespond{
		Id:          strconv.FormatInt(m.Uuid, 10),
		GroupUuid:   m.GroupUuid,
		SenderUuid:  m.SenderUuid,
		Content:     m.Content,
		Attachments: unmarshalAttachments(m.Attachments),
		CreatedAt:   m.CreatedAt.Format(time.RFC3339Nano),
	}
}

// GetOrCreateConversation 获取或首建与对方的单聊会话
// 参与者对按字典序规整后存储，并发首建时落后方命中唯一键冲突，回查获胜方
func (s *chatService) GetOrCreateConversation(userId, otherUserId string) (*respond.ConversationRespond, error) {
	if otherUserId == "" || otherUserId == userId {
		return nil, errorx.New(errorx.CodeInvalidParam, "不能与自己建立会话")
	}
	if _, err := s.repos.User.FindByUuid(otherUserId); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "对方用户不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	userOneId, userTwoId := model.CanonicalPair(userId, otherUserId)
	conversation, err := s.repos.Conversation.FindByPair(userOneId, userTwoId)
	if err != nil && !errorx.IsNotFound(err) {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	if conversation == nil || errorx.IsNotFound(err) {
		fresh := &model.Conversation{
			Uuid:      random.GetEntityUuid("C"),
			UserOneId: userOneId,
			UserTwoId: userTwoId,
		}
		createErr := s.repos.Conversation.Create(fresh)
		switch {
		case createErr == nil:
			conversation = fresh
		case errorx.GetCode(createErr) == errorx.CodeConflict:
			// 并发首建输了，回查获胜方的会话
			conversation, err = s.repos.Conversation.FindByPair(userOneId, userTwoId)
			if err != nil {
				zap.L().Error(err.Error())
				return nil, errorx.ErrServerBusy
			}
		default:
			zap.L().Error(createErr.Error())
			return nil, errorx.ErrServerBusy
		}
	}

	return s.conversationRespond(conversation, userId), nil
}

func (s *chatService) conversationRespond(c *model.Conversation, viewerId string) *respond.ConversationRespond {
	rsp := &respond.ConversationRespond{
		Uuid:        c.Uuid,
		OtherUserId: c.UserOneId,
	}
	if c.UserOneId == viewerId {
		rsp.OtherUserId = c.UserTwoId
	}
	if c.LastMessageAt.Valid {
		rsp.LastMessageAt = c.LastMessageAt.Time.Format(time.RFC3339)
	}
	return rsp
}

// ListConversations 获取我的会话列表，按最近消息时间倒序，附最新消息摘要
func (s *chatService) ListConversations(userId string) ([]respond.ConversationRespond, error) {
	cacheKey := "conversation_list_" + userId

	// 1. 尝试从缓存获取
	rspString, err := s.cache.Get(context.Background(), cacheKey)
	if err == nil && rspString != "" {
		var cached []respond.ConversationRespond
		if err := json.Unmarshal([]byte(rspString), &cached); err == nil {
			return cached, nil
		}
		zap.L().Error("Unmarshal conversation list cache error", zap.Error(err))
	} else if err != nil {
		zap.L().Error("Redis get error", zap.Error(err))
	}

	// 2. 缓存未命中 -> 查数据库
	conversations, err := s.repos.Conversation.FindByUser(userId)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	rspList := make([]respond.ConversationRespond, 0, len(conversations))
	for i := range conversations {
		rsp := s.conversationRespond(&conversations[i], userId)
		latest, err := s.repos.Message.FindLatest(conversations[i].Uuid)
		if err != nil && !errorx.IsNotFound(err) {
			zap.L().Error(err.Error())
		}
		if latest != nil {
			rsp.LastMessage = latest.Content
			if rsp.LastMessage == "" && latest.Attachments != "" {
				rsp.LastMessage = "[附件]"
			}
		}
		rspList = append(rspList, *rsp)
	}

	// 3. 回写缓存（异步，短 TTL，消息到达时会主动失效）
	s.cache.SubmitTask(func() {
		rspBytes, err := json.Marshal(rspList)
		if err != nil {
			zap.L().Error("Marshal conversation list error", zap.Error(err))
			return
		}
		if err := s.cache.Set(context.Background(), cacheKey, string(rspBytes), time.Minute*5); err != nil {
			zap.L().Error("Set cache error", zap.Error(err))
		}
	})

	return rspList, nil
}

// SendPrivateMessage 发送单聊消息
// 消息写入与会话时间线更新在同一事务内，成功后向会话房间推送实时事件
func (s *chatService) SendPrivateMessage(userId, conversationUuid string, req request.SendMessageRequest) (*respond.MessageRespond, error) {
	if req.Content == "" && len(req.Attachments) == 0 {
		return nil, errorx.New(errorx.CodeInvalidParam, "消息内容不能为空")
	}

	conversation, err := s.repos.Conversation.FindByUuid(conversationUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "会话不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if !conversation.Participant(userId) {
		return nil, errorx.New(errorx.CodeForbidden, "不是会话参与者")
	}

	message := &model.Message{
		Uuid:             snowflake.GenerateID(),
		ConversationUuid: conversation.Uuid,
		SenderUuid:       userId,
		Content:          req.Content,
		Attachments:      marshalAttachments(req.Attachments),
	}

	now := time.Now()
	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Message.Create(message); err != nil {
			return err
		}
		return txRepos.Conversation.TouchLastMessage(conversation.Uuid, now)
	})
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	rsp := privateMessageRespond(message)
	s.publish(PrivateRoom(conversation.Uuid), "newPrivateMessage", rsp)

	// 双方的会话列表缓存都已过期，批量失效
	s.cache.SubmitTask(func() {
		err := s.cache.DeleteByPatterns(context.Background(), []string{
			"conversation_list_" + conversation.UserOneId,
			"conversation_list_" + conversation.UserTwoId,
		})
		if err != nil {
			zap.L().Error(err.Error())
		}
	})

	return &rsp, nil
}

// ListPrivateMessages 倒序分页拉取单聊消息
// before 零值表示从现在开始取最新一页
func (s *chatService) ListPrivateMessages(userId, conversationUuid string, before time.Time, limit int) ([]respond.MessageRespond, error) {
	conversation, err := s.repos.Conversation.FindByUuid(conversationUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "会话不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if !conversation.Participant(userId) {
		return nil, errorx.New(errorx.CodeForbidden, "不是会话参与者")
	}

	if before.IsZero() {
		before = time.Now()
	}
	if limit <= 0 || limit > constants.MESSAGE_PAGE_DEFAULT_LIMIT {
		limit = constants.MESSAGE_PAGE_DEFAULT_LIMIT
	}

	messages, err := s.repos.Message.FindBefore(conversation.Uuid, before, limit)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	rspList := make([]respond.MessageRespond, 0, len(messages))
	for i := range messages {
		rspList = append(rspList, privateMessageRespond(&messages[i]))
	}
	return rspList, nil
}

// SendGroupMessage 发送群聊消息，仅群成员可发
// 群聊容器在首条消息时惰性创建，并发首建同样由唯一键兜底
func (s *chatService) SendGroupMessage(userId, groupUuid string, req request.SendMessageRequest) (*respond.MessageRespond, error) {
	if req.Content == "" && len(req.Attachments) == 0 {
		return nil, errorx.New(errorx.CodeInvalidParam, "消息内容不能为空")
	}

	if _, err := s.repos.Group.FindByUuid(groupUuid); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "群组不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if _, err := s.repos.GroupMember.FindMember(groupUuid, userId); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeForbidden, "不是群成员")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	chat, err := s.ensureGroupChat(groupUuid)
	if err != nil {
		return nil, err
	}

	message := &model.GroupMessage{
		Uuid:        snowflake.GenerateID(),
		GroupUuid:   groupUuid,
		SenderUuid:  userId,
		Content:     req.Content,
		Attachments: marshalAttachments(req.Attachments),
	}

	now := time.Now()
	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.GroupMessage.Create(message); err != nil {
			return err
		}
		return txRepos.GroupChat.TouchLastMessage(chat.Uuid, now)
	})
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	rsp := groupMessageRespond(message)
	s.publish(GroupRoom(groupUuid), "newGroupMessage", rsp)

	return &rsp, nil
}

// ensureGroupChat 获取群聊容器，不存在则创建，并发冲突时回查
func (s *chatService) ensureGroupChat(groupUuid string) (*model.GroupChat, error) {
	chat, err := s.repos.GroupChat.FindByGroupUuid(groupUuid)
	if err == nil {
		return chat, nil
	}
	if !errorx.IsNotFound(err) {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	fresh := &model.GroupChat{
		Uuid:      random.GetEntityUuid("C"),
		GroupUuid: groupUuid,
	}
	createErr := s.repos.GroupChat.Create(fresh)
	switch {
	case createErr == nil:
		return fresh, nil
	case errorx.GetCode(createErr) == errorx.CodeConflict:
		chat, err = s.repos.GroupChat.FindByGroupUuid(groupUuid)
		if err != nil {
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
		return chat, nil
	default:
		zap.L().Error(createErr.Error())
		return nil, errorx.ErrServerBusy
	}
}

// ListGroupMessages 倒序分页拉取群聊消息，仅群成员可读
// 先查群组再查成员，群不存在时返回 404 而不是 403，与发消息一致
func (s *chatService) ListGroupMessages(userId, groupUuid string, before time.Time, limit int) ([]respond.MessageRespond, error) {
	if _, err := s.repos.Group.FindByUuid(groupUuid); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "群组不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if _, err := s.repos.GroupMember.FindMember(groupUuid, userId); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeForbidden, "不是群成员")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	if before.IsZero() {
		before = time.Now()
	}
	if limit <= 0 || limit > constants.MESSAGE_PAGE_DEFAULT_LIMIT {
		limit = constants.MESSAGE_PAGE_DEFAULT_LIMIT
	}

	messages, err := s.repos.GroupMessage.FindBefore(groupUuid, before, limit)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	rspList := make([]respond.MessageRespond, 0, len(messages))
	for i := range messages {
		rspList = append(rspList, groupMessageRespond(&messages[i]))
	}
	return rspList, nil
}
