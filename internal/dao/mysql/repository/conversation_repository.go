// Package repository 提供数据访问层的具体实现
// 本文件实现 ConversationRepository 接口
package repository

import (
	"time"

	"quanzi_server/internal/model"

	"gorm.io/gorm"
)

// conversationRepository ConversationRepository 接口的实现
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository 创建 ConversationRepository 实例
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

// FindByUuid 根据会话 UUID 查找
func (r *conversationRepository) FindByUuid(uuid string) (*model.Conversation, error) {
	var conversation model.Conversation
	if err := r.db.First(&conversation, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询会话 uuid=%s", uuid)
	}
	return &conversation, nil
}

// FindByPair 根据规整后的用户对查找
// 调用方必须先用 model.CanonicalPair 规整参数顺序
func (r *conversationRepository) FindByPair(userOneId, userTwoId string) (*model.Conversation, error) {
	var conversation model.Conversation
	if err := r.db.First(&conversation, "user_one_id = ? AND user_two_id = ?",
		userOneId, userTwoId).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询会话 pair=%s/%s", userOneId, userTwoId)
	}
	return &conversation, nil
}

// Create 创建会话
// 并发首建时落后方命中唯一键冲突，返回 CodeConflict，调用方回查获胜方记录
func (r *conversationRepository) Create(conversation *model.Conversation) error {
	if err := r.db.Create(conversation).Error; err != nil {
		return wrapDBError(err, "创建会话")
	}
	return nil
}

// FindByUser 查找用户参与的全部会话，按最近消息时间倒序
func (r *conversationRepository) FindByUser(userUuid string) ([]model.Conversation, error) {
	var conversations []model.Conversation
	err := r.db.Where("user_one_id = ? OR user_two_id = ?", userUuid, userUuid).
		Order("last_message_at DESC").
		Find(&conversations).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询用户会话 user=%s", userUuid)
	}
	return conversations, nil
}

// TouchLastMessage 更新会话最近消息时间
func (r *conversationRepository) TouchLastMessage(uuid string, at time.Time) error {
	if err := r.db.Model(&model.Conversation{}).Where("uuid = ?", uuid).
		Update("last_message_at", at).Error; err != nil {
		return wrapDBErrorf(err, "更新会话时间 uuid=%s", uuid)
	}
	return nil
}
