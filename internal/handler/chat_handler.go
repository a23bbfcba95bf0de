// Package handler 提供 HTTP 请求处理器
// 本文件处理单聊/群聊消息相关的 API 请求
package handler

import (
	"strconv"
	"time"

	"quanzi_server/internal/dto/request"
	"quanzi_server/internal/service"
	"quanzi_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// ChatHandler 聊天相关 Handler
type ChatHandler struct {
	chatSvc service.ChatService
}

// NewChatHandler 创建 ChatHandler 实例
func NewChatHandler(chatSvc service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// parsePageQuery 解析 before/limit 分页参数
// before 为 RFC3339 时间，小数秒可选（time.Parse 对 RFC3339 布局兼容小数秒），
// 缺省取当前时间（由 Service 层补齐）
func parsePageQuery(c *gin.Context) (time.Time, int, error) {
	var before time.Time
	if raw := c.Query("before"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, 0, errorx.New(errorx.CodeInvalidParam, "before 必须是 RFC3339 时间")
		}
		before = parsed
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return time.Time{}, 0, errorx.New(errorx.CodeInvalidParam, "limit 必须是整数")
		}
		limit = parsed
	}
	return before, limit, nil
}

// GetOrCreateConversation 获取或首建单聊会话
// POST /chats/private/with/:otherUserId
func (h *ChatHandler) GetOrCreateConversation(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	rsp, err := h.chatSvc.GetOrCreateConversation(userId, c.Param("otherUserId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}

// ListConversations 获取我的会话列表
// GET /chats/private
func (h *ChatHandler) ListConversations(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	rsp, err := h.chatSvc.ListConversations(userId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}

// SendPrivateMessage 发送单聊消息
// POST /chats/private/:conversationId/message
func (h *ChatHandler) SendPrivateMessage(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	var req request.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	rsp, err := h.chatSvc.SendPrivateMessage(userId, c.Param("conversationId"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, rsp)
}

// ListPrivateMessages 倒序分页拉取单聊消息
// GET /chats/private/:conversationId/messages?before=...&limit=...
func (h *ChatHandler) ListPrivateMessages(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	before, limit, err := parsePageQuery(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	rsp, err := h.chatSvc.ListPrivateMessages(userId, c.Param("conversationId"), before, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}

// SendGroupMessage 发送群聊消息
// POST /chats/group/:groupId/message
func (h *ChatHandler) SendGroupMessage(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	var req request.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	rsp, err := h.chatSvc.SendGroupMessage(userId, c.Param("groupId"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, rsp)
}

// ListGroupMessages 倒序分页拉取群聊消息
// GET /chats/group/:groupId/messages?before=...&limit=...
func (h *ChatHandler) ListGroupMessages(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	before, limit, err := parsePageQuery(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	rsp, err := h.chatSvc.ListGroupMessages(userId, c.Param("groupId"), before, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}
