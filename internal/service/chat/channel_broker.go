// Package chat 实现聊天系统的核心服务层
// channel_broker.go
// 核心职责：单机模式下的房间消息代理
// 不依赖外部消息队列，发布到内存通道后由消费循环广播到本进程订阅者
package chat

import (
	"context"
	"encoding/json"

	"quanzi_server/pkg/constants"

	"go.uber.org/zap"
)

// roomEnvelope 房间消息信封，Channel 与 Kafka 两种代理共用
type roomEnvelope struct {
	Room string          `json:"room"`
	Data json.RawMessage `json:"data"`
}

// ChannelBroker 单机房间消息代理
// 单一消费协程顺序取帧，同一房间的发布顺序即广播顺序
type ChannelBroker struct {
	registry *RoomRegistry
	transmit chan roomEnvelope
	done     chan struct{}
}

// NewChannelBroker 创建 ChannelBroker 实例
func NewChannelBroker(registry *RoomRegistry) *ChannelBroker {
	return &ChannelBroker{
		registry: registry,
		transmit: make(chan roomEnvelope, constants.CHANNEL_SIZE),
		done:     make(chan struct{}),
	}
}

// Publish 发布一帧到房间
// 通道满时丢帧并记日志（推送是尽力而为，不阻塞业务写路径）
func (b *ChannelBroker) Publish(ctx context.Context, room string, data []byte) error {
	select {
	case b.transmit <- roomEnvelope{Room: room, Data: data}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		zap.L().Warn("房间消息通道已满，丢弃本帧", zap.String("room", room))
		return nil
	}
}

// Start 消费循环：从通道取帧并广播
func (b *ChannelBroker) Start() {
	for {
		select {
		case envelope, ok := <-b.transmit:
			if !ok {
				return
			}
			b.registry.Broadcast(envelope.Room, envelope.Data)
		case <-b.done:
			return
		}
	}
}

// Close 关闭代理
func (b *ChannelBroker) Close() {
	close(b.done)
}

var _ RoomBroker = (*ChannelBroker)(nil)
