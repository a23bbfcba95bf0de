// Package model 定义数据库实体模型
// 本文件定义单聊会话模型
package model

import (
	"database/sql"

	"gorm.io/gorm"
)

// Conversation 单聊会话
// 对应数据库 conversation 表
//
// UserOneId/UserTwoId 按字典序存储（UserOneId < UserTwoId），
// 组合唯一索引保证同一对用户只有一个会话。
// 并发首次建会话时，落后的一方会命中唯一键冲突，由仓储层回查获胜方的记录。
type Conversation struct {
	gorm.Model

	// Uuid 会话唯一标识，C 前缀
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(21);not null;comment:会话唯一id"`

	// UserOneId 参与者之一（字典序较小）
	UserOneId string `gorm:"column:user_one_id;uniqueIndex:idx_participants;type:char(21);not null;comment:参与者1"`

	// UserTwoId 参与者之二（字典序较大）
	UserTwoId string `gorm:"column:user_two_id;uniqueIndex:idx_participants;index;type:char(21);not null;comment:参与者2"`

	// LastMessageAt 最近一条消息时间，会话列表按此倒序
	LastMessageAt sql.NullTime `gorm:"column:last_message_at;index;comment:最近消息时间"`
}

// TableName 指定表名
func (Conversation) TableName() string {
	return "conversation"
}

// Participant 判断用户是否是会话参与者
func (c *Conversation) Participant(userUuid string) bool {
	return c.UserOneId == userUuid || c.UserTwoId == userUuid
}

// CanonicalPair 将两个用户 id 规整为字典序
func CanonicalPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}
