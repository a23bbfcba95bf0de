// Package router 提供 HTTP 路由注册
// 本文件定义群组相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterGroupRoutes 注册群组相关路由（需要认证）
// 包括群组生命周期、成员管理、入群审批、邀请码与审计日志
func (rt *Router) RegisterGroupRoutes(rg *gin.RouterGroup) {
	groupGroup := rg.Group("/groups")
	{
		// ===== 群组生命周期 =====
		groupGroup.POST("", rt.handlers.Group.CreateGroup)       // 创建群组
		groupGroup.GET("/:id", rt.handlers.Group.GetGroup)       // 获取群组详情
		groupGroup.PATCH("/:id", rt.handlers.Group.UpdateGroup)  // 更新群组（admin 以上）
		groupGroup.DELETE("/:id", rt.handlers.Group.DeleteGroup) // 删除群组（admin 以上）

		// ===== 入群与退群 =====
		groupGroup.POST("/:id/join", rt.handlers.Group.RequestJoin)      // 申请入群
		groupGroup.POST("/:id/leave", rt.handlers.Group.LeaveGroup)      // 退出群组
		groupGroup.POST("/join/invite", rt.handlers.Group.JoinByInvite)  // 凭邀请码入群
		groupGroup.POST("/:id/invite", rt.handlers.Group.GenerateInviteCode) // 生成邀请码（admin 以上）

		// ===== 审批与成员管理 =====
		groupGroup.POST("/:id/approve/:userId", rt.handlers.Group.ApproveJoin)   // 通过入群申请
		groupGroup.POST("/:id/reject/:userId", rt.handlers.Group.RejectJoin)     // 拒绝入群申请
		groupGroup.POST("/:id/kick/:userId", rt.handlers.Group.KickMember)       // 移除成员
		groupGroup.POST("/:id/promote/:userId", rt.handlers.Group.PromoteMember) // 提升为 admin

		// ===== 审计 =====
		groupGroup.GET("/:id/audit", rt.handlers.Group.GetAuditLog) // 审计日志（admin 以上）
	}
}
