// Package repository 提供数据访问层的具体实现
// 本文件实现单聊与群聊消息的 Repository 接口
package repository

import (
	"time"

	"quanzi_server/internal/model"

	"gorm.io/gorm"
)

// messageRepository MessageRepository 接口的实现
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository 创建 MessageRepository 实例
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create 追加消息
func (r *messageRepository) Create(message *model.Message) error {
	if err := r.db.Create(message).Error; err != nil {
		return wrapDBError(err, "创建消息")
	}
	return nil
}

// FindBefore 倒序分页
// created_at 相同的消息按雪花 ID 倒序，游标翻页不重不漏
func (r *messageRepository) FindBefore(conversationUuid string, before time.Time, limit int) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.Where("conversation_uuid = ? AND created_at < ?", conversationUuid, before).
		Order("created_at DESC, uuid DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "分页查询消息 conversation=%s", conversationUuid)
	}
	return messages, nil
}

// FindLatest 取会话最新一条消息
func (r *messageRepository) FindLatest(conversationUuid string) (*model.Message, error) {
	var message model.Message
	err := r.db.Where("conversation_uuid = ?", conversationUuid).
		Order("created_at DESC, uuid DESC").
		First(&message).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询最新消息 conversation=%s", conversationUuid)
	}
	return &message, nil
}

// groupMessageRepository GroupMessageRepository 接口的实现
type groupMessageRepository struct {
	db *gorm.DB
}

// NewGroupMessageRepository 创建 GroupMessageRepository 实例
func NewGroupMessageRepository(db *gorm.DB) GroupMessageRepository {
	return &groupMessageRepository{db: db}
}

// Create 追加消息
func (r *groupMessageRepository) Create(message *model.GroupMessage) error {
	if err := r.db.Create(message).Error; err != nil {
		return wrapDBError(err, "创建群消息")
	}
	return nil
}

// FindBefore 倒序分页，语义与单聊一致
func (r *groupMessageRepository) FindBefore(groupUuid string, before time.Time, limit int) ([]model.GroupMessage, error) {
	var messages []model.GroupMessage
	err := r.db.Where("group_uuid = ? AND created_at < ?", groupUuid, before).
		Order("created_at DESC, uuid DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "分页查询群消息 group=%s", groupUuid)
	}
	return messages, nil
}
