// Package chat 实现聊天系统的核心服务层
// conn_manager.go
// 核心职责：WebSocket 连接生命周期管理
// 1. 建立 WebSocket 连接 (Upgrade)
// 2. 读协程解析订阅控制帧（joinPrivateRoom 等），写协程推送房间事件
// 3. 连接断开时清理其全部房间订阅
package chat

import (
	"encoding/json"
	"net/http"

	"quanzi_server/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// UserConn 一条 WebSocket 连接
type UserConn struct {
	Conn *websocket.Conn
	Uuid string
	// Send 待推送给前端的帧
	Send chan []byte

	registry *RoomRegistry
}

// subscribeFrame 前端发来的订阅控制帧
// 示例: {"event":"joinPrivateRoom","conversation_id":"Cxxx"}
type subscribeFrame struct {
	Event          string `json:"event"`
	ConversationId string `json:"conversation_id"`
	GroupId        string `json:"group_id"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Read 读协程：解析订阅控制帧并更新订阅表
// 房间订阅不做成员校验（既有行为），连接本身已通过 token 认证
func (c *UserConn) Read() {
	zap.L().Info("ws read goroutine start", zap.String("user", c.Uuid))
	defer func() {
		c.registry.RemoveConn(c)
		close(c.Send)
		_ = c.Conn.Close()
	}()

	for {
		_, jsonMessage, err := c.Conn.ReadMessage()
		if err != nil {
			zap.L().Info("ws read closed", zap.String("user", c.Uuid), zap.Error(err))
			return
		}

		var frame subscribeFrame
		if err := json.Unmarshal(jsonMessage, &frame); err != nil {
			zap.L().Warn("无法解析的控制帧", zap.String("user", c.Uuid), zap.Error(err))
			continue
		}

		switch frame.Event {
		case "joinPrivateRoom":
			if frame.ConversationId != "" {
				c.registry.Join(PrivateRoom(frame.ConversationId), c)
			}
		case "leavePrivateRoom":
			if frame.ConversationId != "" {
				c.registry.Leave(PrivateRoom(frame.ConversationId), c)
			}
		case "joinGroupRoom":
			if frame.GroupId != "" {
				c.registry.Join(GroupRoom(frame.GroupId), c)
			}
		case "leaveGroupRoom":
			if frame.GroupId != "" {
				c.registry.Leave(GroupRoom(frame.GroupId), c)
			}
		default:
			zap.L().Debug("忽略未知控制帧", zap.String("event", frame.Event))
		}
	}
}

// Write 写协程：把房间事件帧推送给前端
func (c *UserConn) Write() {
	zap.L().Info("ws write goroutine start", zap.String("user", c.Uuid))
	for data := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
			zap.L().Error(err.Error())
			return
		}
	}
}

// NewClientInit 完成 WebSocket 升级并启动读写协程
// userId 由上游 JWT 中间件从 access token 解析
func NewClientInit(c *gin.Context, userId string, registry *RoomRegistry) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error(err.Error())
		return
	}
	client := &UserConn{
		Conn:     conn,
		Uuid:     userId,
		Send:     make(chan []byte, constants.CHANNEL_SIZE),
		registry: registry,
	}
	go client.Read()
	go client.Write()
	zap.L().Info("ws连接成功", zap.String("user", userId))
}
