// Package router 提供 HTTP 路由注册
// 本文件定义群组活动相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterEventRoutes 注册活动相关路由（需要认证）
func (rt *Router) RegisterEventRoutes(rg *gin.RouterGroup) {
	rg.POST("/groups/:id/events", rt.handlers.Event.CreateEvent) // 创建活动（admin 以上）
	rg.GET("/groups/:id/events", rt.handlers.Event.ListEvents)   // 活动列表（群成员）

	rg.POST("/events/:eventId/rsvp", rt.handlers.Event.Rsvp) // 报名/变更状态
}
