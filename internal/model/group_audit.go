package model

import "gorm.io/gorm"

// GroupAudit 群组操作审计日志，只追加不修改
type GroupAudit struct {
	gorm.Model
	GroupUuid  string `gorm:"type:char(21);index;not null;comment:群组ID"`
	Action     string `gorm:"type:varchar(30);not null;comment:动作"`
	ActorUuid  string `gorm:"type:char(21);not null;comment:操作者ID"`
	TargetUuid string `gorm:"type:char(21);comment:被操作者ID"`
	Detail     string `gorm:"type:varchar(255);comment:补充信息"`
}

func (GroupAudit) TableName() string {
	return "group_audit"
}
