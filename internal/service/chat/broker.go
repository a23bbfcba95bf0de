// Package chat 实现聊天系统的核心服务层
// broker.go
// 核心职责：定义房间消息代理接口
// 抽象房间内的消息发布，支持 Kafka 和 Channel 两种实现
package chat

import "context"

// RoomBroker 房间消息代理接口
// Publish 把一帧数据投递到指定房间，由代理负责送达本进程
// （Channel 模式）或经 Kafka 中转后送达各进程（Kafka 模式）的订阅者。
// 推送为尽力而为：无确认、无重放。
type RoomBroker interface {
	// Publish 发布一帧数据到房间
	Publish(ctx context.Context, room string, data []byte) error
	// Start 启动消费循环（阻塞，应在独立 goroutine 中调用）
	Start()
	// Close 关闭代理资源
	Close()
}

// 房间命名约定

// PrivateRoom 单聊房间名
func PrivateRoom(conversationUuid string) string {
	return "private_" + conversationUuid
}

// GroupRoom 群聊房间名
func GroupRoom(groupUuid string) string {
	return "group_" + groupUuid
}
