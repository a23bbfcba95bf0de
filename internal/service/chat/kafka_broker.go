// Package chat 实现聊天系统的核心服务层
// kafka_broker.go
// 核心职责：多进程部署时的房间消息代理
// 发布方把房间信封写入 Kafka，每个进程的消费循环读回并广播给本进程订阅者。
// 以房间名为分区 Key，同一房间的消息保持写入顺序。
package chat

import (
	"context"
	"encoding/json"
	"time"

	myconfig "quanzi_server/internal/config"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaBroker Kafka 房间消息代理
type KafkaBroker struct {
	registry *RoomRegistry
	producer *kafka.Writer
	consumer *kafka.Reader
	done     chan struct{}
}

// NewKafkaBroker 根据配置创建 Kafka 代理
// GroupID 使用随机后缀使每个进程独立消费全量消息（广播语义）
func NewKafkaBroker(registry *RoomRegistry, groupID string) *KafkaBroker {
	kafkaConfig := myconfig.GetConfig().KafkaConfig
	return &KafkaBroker{
		registry: registry,
		producer: &kafka.Writer{
			Addr:                   kafka.TCP(kafkaConfig.HostPort),
			Topic:                  kafkaConfig.ChatTopic,
			Balancer:               &kafka.Hash{},
			WriteTimeout:           kafkaConfig.Timeout * time.Second,
			RequiredAcks:           kafka.RequireNone,
			AllowAutoTopicCreation: false,
		},
		consumer: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        []string{kafkaConfig.HostPort},
			Topic:          kafkaConfig.ChatTopic,
			CommitInterval: kafkaConfig.Timeout * time.Second,
			GroupID:        groupID,
			StartOffset:    kafka.LastOffset,
		}),
		done: make(chan struct{}),
	}
}

// Publish 把房间信封写入 Kafka，Key 取房间名保证房间内有序
func (b *KafkaBroker) Publish(ctx context.Context, room string, data []byte) error {
	envelope, err := json.Marshal(roomEnvelope{Room: room, Data: data})
	if err != nil {
		return err
	}
	return b.producer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(room),
		Value: envelope,
	})
}

// Start 消费循环：从 Kafka 读回信封并广播给本进程订阅者
func (b *KafkaBroker) Start() {
	ctx := context.Background()
	for {
		select {
		case <-b.done:
			return
		default:
		}

		m, err := b.consumer.ReadMessage(ctx)
		if err != nil {
			zap.L().Error("kafka read message", zap.Error(err))
			continue
		}

		var envelope roomEnvelope
		if err := json.Unmarshal(m.Value, &envelope); err != nil {
			zap.L().Error("kafka unmarshal envelope", zap.Error(err))
			continue
		}
		b.registry.Broadcast(envelope.Room, envelope.Data)
	}
}

// Close 关闭生产者与消费者
func (b *KafkaBroker) Close() {
	close(b.done)
	if err := b.producer.Close(); err != nil {
		zap.L().Error(err.Error())
	}
	if err := b.consumer.Close(); err != nil {
		zap.L().Error(err.Error())
	}
}

var _ RoomBroker = (*KafkaBroker)(nil)
