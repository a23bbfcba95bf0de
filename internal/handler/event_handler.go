// Package handler 提供 HTTP 请求处理器
// 本文件处理群组活动相关的 API 请求
package handler

import (
	"quanzi_server/internal/dto/request"
	"quanzi_server/internal/service"

	"github.com/gin-gonic/gin"
)

// EventHandler 活动相关 Handler
type EventHandler struct {
	eventSvc service.EventService
}

// NewEventHandler 创建 EventHandler 实例
func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

// CreateEvent 创建群组活动（admin 以上）
// POST /groups/:id/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	var req request.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	rsp, err := h.eventSvc.CreateEvent(userId, c.Param("id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, rsp)
}

// ListEvents 查询群组活动列表（仅群成员）
// GET /groups/:id/events
func (h *EventHandler) ListEvents(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	rsp, err := h.eventSvc.ListEvents(userId, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}

// Rsvp 提交/变更活动报名状态
// POST /events/:eventId/rsvp
func (h *EventHandler) Rsvp(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	var req request.RsvpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.eventSvc.Rsvp(userId, c.Param("eventId"), req.Status); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
