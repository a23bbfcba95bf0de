package model

import "gorm.io/gorm"

// RSVP 状态
const (
	RsvpGoing      = "going"
	RsvpInterested = "interested"
	RsvpCancelled  = "cancelled"
)

// EventRsvp 活动报名，每人每活动一条记录，重复提交覆盖状态
type EventRsvp struct {
	gorm.Model
	EventUuid string `gorm:"type:char(21);uniqueIndex:idx_event_user;not null;comment:活动ID"`
	UserUuid  string `gorm:"type:char(21);uniqueIndex:idx_event_user;index;not null;comment:用户ID"`
	Status    string `gorm:"type:char(12);not null;comment:状态 going/interested/cancelled"`
}

func (EventRsvp) TableName() string {
	return "event_rsvp"
}
