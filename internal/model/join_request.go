package model

import "gorm.io/gorm"

// JoinRequest 入群申请，仅保留待审批记录
// 同一用户对同一群组只允许一条未处理申请
type JoinRequest struct {
	gorm.Model
	GroupUuid string `gorm:"type:char(21);uniqueIndex:idx_group_applicant;not null;comment:群组ID"`
	UserUuid  string `gorm:"type:char(21);uniqueIndex:idx_group_applicant;index;not null;comment:申请人ID"`
	Message   string `gorm:"type:varchar(200);comment:申请附言"`
}

func (JoinRequest) TableName() string {
	return "join_request"
}
