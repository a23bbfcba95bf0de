package model

import "gorm.io/gorm"

// GroupMember 群成员关联表
// 同一用户在同一群组只允许一条记录
type GroupMember struct {
	gorm.Model
	GroupUuid string `gorm:"type:char(21);uniqueIndex:idx_group_user;not null;comment:群组ID"`
	UserUuid  string `gorm:"type:char(21);uniqueIndex:idx_group_user;index;not null;comment:用户ID"`
	Role      string `gorm:"type:char(10);default:member;not null;comment:角色 owner/admin/moderator/member"`
}

func (GroupMember) TableName() string {
	return "group_member"
}
