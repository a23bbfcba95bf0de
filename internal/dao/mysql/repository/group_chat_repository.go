package repository

import (
	"time"

	"quanzi_server/internal/model"

	"gorm.io/gorm"
)

// groupChatRepository GroupChatRepository 接口的实现
type groupChatRepository struct {
	db *gorm.DB
}

// NewGroupChatRepository 创建 GroupChatRepository 实例
func NewGroupChatRepository(db *gorm.DB) GroupChatRepository {
	return &groupChatRepository{db: db}
}

// FindByGroupUuid 根据群组查找群聊
func (r *groupChatRepository) FindByGroupUuid(groupUuid string) (*model.GroupChat, error) {
	var chat model.GroupChat
	if err := r.db.First(&chat, "group_uuid = ?", groupUuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询群聊 group=%s", groupUuid)
	}
	return &chat, nil
}

// Create 创建群聊
// group_uuid 唯一索引保证每群一个，并发首建冲突时返回 CodeConflict
func (r *groupChatRepository) Create(chat *model.GroupChat) error {
	if err := r.db.Create(chat).Error; err != nil {
		return wrapDBError(err, "创建群聊")
	}
	return nil
}

// TouchLastMessage 更新群聊最近消息时间
func (r *groupChatRepository) TouchLastMessage(uuid string, at time.Time) error {
	if err := r.db.Model(&model.GroupChat{}).Where("uuid = ?", uuid).
		Update("last_message_at", at).Error; err != nil {
		return wrapDBErrorf(err, "更新群聊时间 uuid=%s", uuid)
	}
	return nil
}
