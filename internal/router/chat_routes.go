// Package router 提供 HTTP 路由注册
// 本文件定义单聊/群聊消息相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes 注册聊天相关路由（需要认证）
func (rt *Router) RegisterChatRoutes(rg *gin.RouterGroup) {
	chatGroup := rg.Group("/chats")
	{
		// ===== 单聊 =====
		chatGroup.GET("/private", rt.handlers.Chat.ListConversations)                          // 我的会话列表
		chatGroup.POST("/private/with/:otherUserId", rt.handlers.Chat.GetOrCreateConversation) // 获取/首建会话
		chatGroup.POST("/private/:conversationId/message", rt.handlers.Chat.SendPrivateMessage) // 发送单聊消息
		chatGroup.GET("/private/:conversationId/messages", rt.handlers.Chat.ListPrivateMessages) // 拉取单聊消息

		// ===== 群聊 =====
		chatGroup.POST("/group/:groupId/message", rt.handlers.Chat.SendGroupMessage) // 发送群聊消息
		chatGroup.GET("/group/:groupId/messages", rt.handlers.Chat.ListGroupMessages) // 拉取群聊消息
	}
}
