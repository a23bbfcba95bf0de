package model

import (
	"time"

	"gorm.io/gorm"
)

// InviteCode 群组邀请码
// 12 位 hex 字符串，有效期 7 天，有效期内可重复使用，不支持撤销
type InviteCode struct {
	gorm.Model
	Code      string    `gorm:"column:code;uniqueIndex;type:char(12);not null;comment:邀请码"`
	GroupUuid string    `gorm:"column:group_uuid;index;type:char(21);not null;comment:群组ID"`
	CreatedBy string    `gorm:"column:created_by;type:char(21);not null;comment:生成者ID"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;comment:过期时间"`
}

func (InviteCode) TableName() string {
	return "invite_code"
}

// Expired 判断邀请码是否已过期
func (c *InviteCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
