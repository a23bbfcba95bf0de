// Package router 提供 HTTP 路由注册
// 本文件定义 WebSocket 相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterWebSocketRoutes 注册 WebSocket 路由
// 浏览器 WebSocket 无法带自定义请求头，token 走查询参数，
// 在 Handler 内解析校验，不挂 JWT 中间件
func (rt *Router) RegisterWebSocketRoutes(r *gin.Engine) {
	r.GET("/ws", rt.handlers.Ws.Connect) // WebSocket 接入
}
