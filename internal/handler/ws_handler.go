// Package handler 提供 HTTP 请求处理器
// 本文件处理 WebSocket 连接相关的 API 请求
package handler

import (
	"quanzi_server/internal/service/chat"
	"quanzi_server/pkg/errorx"
	"quanzi_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// WsHandler WebSocket 接入 Handler
type WsHandler struct {
	registry *chat.RoomRegistry
}

// NewWsHandler 创建 WsHandler 实例
func NewWsHandler(registry *chat.RoomRegistry) *WsHandler {
	return &WsHandler{registry: registry}
}

// Connect 建立 WebSocket 连接
// GET /ws?token=xxx
// 浏览器 WebSocket 不支持自定义请求头，token 从查询参数传入。
// 升级成功后由控制帧管理房间订阅（joinPrivateRoom / joinGroupRoom 等）。
func (h *WsHandler) Connect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		HandleError(c, errorx.New(errorx.CodeUnauthorized, "缺少 token"))
		return
	}
	claims, err := jwt.ParseToken(token)
	if err != nil || claims.Subject != "access_token" {
		HandleError(c, errorx.New(errorx.CodeUnauthorized, "token 无效"))
		return
	}
	chat.NewClientInit(c, claims.UserID, h.registry)
}
