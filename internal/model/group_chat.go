package model

import (
	"database/sql"

	"gorm.io/gorm"
)

// GroupChat 群聊容器，每个群组唯一，首条消息时惰性创建
type GroupChat struct {
	gorm.Model
	Uuid          string       `gorm:"column:uuid;uniqueIndex;type:char(21);not null;comment:群聊唯一id"`
	GroupUuid     string       `gorm:"column:group_uuid;uniqueIndex;type:char(21);not null;comment:群组ID"`
	LastMessageAt sql.NullTime `gorm:"column:last_message_at;comment:最近消息时间"`
}

func (GroupChat) TableName() string {
	return "group_chat"
}
