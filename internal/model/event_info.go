package model

import (
	"time"

	"gorm.io/gorm"
)

// EventInfo 群组活动
// 群组删除不会级联删除活动（与群聊一致的既有缺口）
type EventInfo struct {
	gorm.Model
	Uuid        string    `gorm:"column:uuid;uniqueIndex;type:char(21);not null;comment:活动唯一id"`
	GroupUuid   string    `gorm:"column:group_uuid;index;type:char(21);not null;comment:群组ID"`
	Title       string    `gorm:"column:title;type:varchar(100);not null;comment:标题"`
	Description string    `gorm:"column:description;type:varchar(500);comment:描述"`
	Location    string    `gorm:"column:location;type:varchar(200);comment:地点"`
	StartAt     time.Time `gorm:"column:start_at;not null;comment:开始时间"`
	EndAt       time.Time `gorm:"column:end_at;comment:结束时间"`
	CreatedBy   string    `gorm:"column:created_by;type:char(21);not null;comment:创建者ID"`
}

func (EventInfo) TableName() string {
	return "event_info"
}
