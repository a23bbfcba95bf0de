// Package handler 提供 HTTP 请求处理器
// 本文件处理群组相关的 API 请求
package handler

import (
	"quanzi_server/internal/dto/request"
	"quanzi_server/internal/service"

	"github.com/gin-gonic/gin"
)

// GroupHandler 群组相关 Handler
type GroupHandler struct {
	groupSvc service.GroupService
}

// NewGroupHandler 创建 GroupHandler 实例
func NewGroupHandler(groupSvc service.GroupService) *GroupHandler {
	return &GroupHandler{groupSvc: groupSvc}
}

// CreateGroup 创建群组
// POST /groups
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	var req request.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	rsp, err := h.groupSvc.CreateGroup(userId, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, rsp)
}

// GetGroup 获取群组详情
// GET /groups/:id
func (h *GroupHandler) GetGroup(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	rsp, err := h.groupSvc.GetGroup(userId, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}

// UpdateGroup 更新群组（admin 以上，白名单字段）
// PATCH /groups/:id
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	var req request.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.groupSvc.UpdateGroup(userId, c.Param("id"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteGroup 删除群组（admin 以上）
// DELETE /groups/:id
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	if err := h.groupSvc.DeleteGroup(userId, c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// RequestJoin 申请入群
// POST /groups/:id/join
// 公开群直接加入（joined=true），私密群进入审批队列
func (h *GroupHandler) RequestJoin(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	// message 可选，空请求体等同于不带申请留言
	var req request.JoinGroupRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleParamError(c, err)
			return
		}
	}
	joined, err := h.groupSvc.RequestJoin(userId, c.Param("id"), req.Message)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"joined": joined})
}

// LeaveGroup 退出群组
// POST /groups/:id/leave
func (h *GroupHandler) LeaveGroup(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	if err := h.groupSvc.LeaveGroup(userId, c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// ApproveJoin 审批通过入群申请
// POST /groups/:id/approve/:userId
func (h *GroupHandler) ApproveJoin(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	if err := h.groupSvc.ApproveJoin(userId, c.Param("id"), c.Param("userId")); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// RejectJoin 拒绝入群申请
// POST /groups/:id/reject/:userId
func (h *GroupHandler) RejectJoin(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	if err := h.groupSvc.RejectJoin(userId, c.Param("id"), c.Param("userId")); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// KickMember 移除成员
// POST /groups/:id/kick/:userId
func (h *GroupHandler) KickMember(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	if err := h.groupSvc.KickMember(userId, c.Param("id"), c.Param("userId")); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// PromoteMember 提升成员为 admin
// POST /groups/:id/promote/:userId
func (h *GroupHandler) PromoteMember(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	if err := h.groupSvc.PromoteMember(userId, c.Param("id"), c.Param("userId")); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GenerateInviteCode 生成邀请码
// POST /groups/:id/invite
func (h *GroupHandler) GenerateInviteCode(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	rsp, err := h.groupSvc.GenerateInviteCode(userId, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, rsp)
}

// JoinByInvite 凭邀请码入群
// POST /groups/join/invite
func (h *GroupHandler) JoinByInvite(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	var req request.JoinByInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	groupId, err := h.groupSvc.JoinByInvite(userId, req.Code)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"group_id": groupId})
}

// GetAuditLog 查询群组审计日志
// GET /groups/:id/audit
func (h *GroupHandler) GetAuditLog(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	rsp, err := h.groupSvc.GetAuditLog(userId, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}
