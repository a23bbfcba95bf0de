// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"quanzi_server/internal/handler"
	"quanzi_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// Router 路由管理器，持有 Handler 聚合
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由管理器
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用
// 认证路由公开，其余业务路由统一挂 JWT 中间件
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	rt.RegisterAuthRoutes(v1) // 认证路由（注册/登录/验证码）

	authed := v1.Group("")
	authed.Use(middleware.JWTAuth())
	{
		rt.RegisterGroupRoutes(authed)    // 群组路由
		rt.RegisterChatRoutes(authed)     // 聊天路由
		rt.RegisterEventRoutes(authed)    // 活动路由
		rt.RegisterDiscoverRoutes(authed) // 发现/推荐路由
	}

	rt.RegisterWebSocketRoutes(r) // WebSocket 路由（token 走查询参数）
}
