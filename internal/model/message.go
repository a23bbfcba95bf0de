// Package model 定义数据库实体模型
// 本文件定义单聊消息模型
package model

import (
	"gorm.io/gorm"
)

// Message 单聊消息
// 对应数据库 message 表，消息创建后不可修改
type Message struct {
	gorm.Model

	// Uuid 消息唯一标识
	// 雪花算法生成的 int64，同一毫秒内的消息依然单调递增，
	// 分页游标在 created_at 相同时用它做次级排序
	Uuid int64 `gorm:"column:uuid;uniqueIndex;type:bigint;not null;comment:消息雪花ID"`

	// ConversationUuid 所属会话
	ConversationUuid string `gorm:"column:conversation_uuid;index;type:char(21);not null;comment:会话uuid"`

	// SenderUuid 发送者
	SenderUuid string `gorm:"column:sender_uuid;index;type:char(21);not null;comment:发送者uuid"`

	// Content 消息文本内容
	Content string `gorm:"column:content;type:TEXT;comment:消息内容"`

	// Attachments 附件 URL 列表，JSON 数组字符串
	Attachments string `gorm:"column:attachments;type:TEXT;comment:附件，JSON数组"`
}

// TableName 指定表名
func (Message) TableName() string {
	return "message"
}
