package repository

import (
	"quanzi_server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// eventRepository EventRepository 接口的实现
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository 创建 EventRepository 实例
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// FindByUuid 根据 UUID 查找活动
func (r *eventRepository) FindByUuid(uuid string) (*model.EventInfo, error) {
	var event model.EventInfo
	if err := r.db.First(&event, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询活动 uuid=%s", uuid)
	}
	return &event, nil
}

// FindByGroup 查找群组全部活动，按开始时间升序
func (r *eventRepository) FindByGroup(groupUuid string) ([]model.EventInfo, error) {
	var events []model.EventInfo
	if err := r.db.Where("group_uuid = ?", groupUuid).
		Order("start_at ASC").
		Find(&events).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询群组活动 group=%s", groupUuid)
	}
	return events, nil
}

// Create 创建活动
func (r *eventRepository) Create(event *model.EventInfo) error {
	if err := r.db.Create(event).Error; err != nil {
		return wrapDBError(err, "创建活动")
	}
	return nil
}

// UpsertRsvp 写入报名状态
// (event_uuid, user_uuid) 唯一，重复提交只覆盖 status
func (r *eventRepository) UpsertRsvp(rsvp *model.EventRsvp) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_uuid"}, {Name: "user_uuid"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(rsvp).Error
	if err != nil {
		return wrapDBError(err, "写入活动报名")
	}
	return nil
}

// FindRsvpsByEvent 查找活动全部报名记录
func (r *eventRepository) FindRsvpsByEvent(eventUuid string) ([]model.EventRsvp, error) {
	var rsvps []model.EventRsvp
	if err := r.db.Where("event_uuid = ?", eventUuid).Find(&rsvps).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询活动报名 event=%s", eventUuid)
	}
	return rsvps, nil
}
