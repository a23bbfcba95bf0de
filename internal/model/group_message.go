package model

import (
	"gorm.io/gorm"
)

// GroupMessage 群聊消息，创建后不可修改
type GroupMessage struct {
	gorm.Model
	Uuid        int64  `gorm:"column:uuid;uniqueIndex;type:bigint;not null;comment:消息雪花ID"`
	GroupUuid   string `gorm:"column:group_uuid;index;type:char(21);not null;comment:群组ID"`
	SenderUuid  string `gorm:"column:sender_uuid;index;type:char(21);not null;comment:发送者uuid"`
	Content     string `gorm:"column:content;type:TEXT;comment:消息内容"`
	Attachments string `gorm:"column:attachments;type:TEXT;comment:附件，JSON数组"`
}

func (GroupMessage) TableName() string {
	return "group_message"
}
