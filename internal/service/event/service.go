// Package event 实现群组活动的核心服务层
// service.go
// 核心职责：活动创建、查询与报名
// 报名采用 UPSERT：同一 (活动,用户) 重复提交覆盖状态
package event

import (
	"time"

	"quanzi_server/internal/dao/mysql/repository"
	"quanzi_server/internal/dto/request"
	"quanzi_server/internal/dto/respond"
	"quanzi_server/internal/model"
	"quanzi_server/pkg/errorx"
	"quanzi_server/pkg/role"
	"quanzi_server/pkg/util/random"

	"go.uber.org/zap"
)

type eventService struct {
	repos *repository.Repositories
}

// NewEventService 创建活动服务实例
func NewEventService(repos *repository.Repositories) *eventService {
	return &eventService{repos: repos}
}

// memberRole 查成员角色，非成员返回 Forbidden
func (e *eventService) memberRole(groupId, userId string) (role.Role, error) {
	member, err := e.repos.GroupMember.FindMember(groupId, userId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return "", errorx.New(errorx.CodeForbidden, "不是群成员")
		}
		zap.L().Error(err.Error())
		return "", errorx.ErrServerBusy
	}
	return role.Role(member.Role), nil
}

func eventRespond(event *model.EventInfo, goingCnt, interestedCnt int) respond.EventRespond {
	rsp := respond.EventRespond{
		Uuid:          event.Uuid,
		GroupUuid:     event.GroupUuid,
		Title:         event.Title,
		Description:   event.Description,
		Location:      event.Location,
		StartAt:       event.StartAt.Format(time.RFC3339),
		CreatedBy:     event.CreatedBy,
		GoingCnt:      goingCnt,
		InterestedCnt: interestedCnt,
	}
	if !event.EndAt.IsZero() {
		rsp.EndAt = event.EndAt.Format(time.RFC3339)
	}
	return rsp
}

// CreateEvent 创建群组活动（admin 以上）
func (e *eventService) CreateEvent(actorId, groupId string, req request.CreateEventRequest) (*respond.EventRespond, error) {
	if _, err := e.repos.Group.FindByUuid(groupId); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "群组不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	actorRole, err := e.memberRole(groupId, actorId)
	if err != nil {
		return nil, err
	}
	if role.Rank(actorRole) < role.Rank(role.Admin) {
		return nil, errorx.New(errorx.CodeForbidden, "create_event 需要 admin 及以上角色")
	}
	if !req.EndAt.IsZero() && req.EndAt.Before(req.StartAt) {
		return nil, errorx.New(errorx.CodeInvalidParam, "结束时间不能早于开始时间")
	}

	event := &model.EventInfo{
		Uuid:        random.GetEntityUuid("E"),
		GroupUuid:   groupId,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
		CreatedBy:   actorId,
	}
	if err := e.repos.Event.Create(event); err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	rsp := eventRespond(event, 0, 0)
	return &rsp, nil
}

// ListEvents 查询群组活动列表（仅群成员），附报名统计
func (e *eventService) ListEvents(viewerId, groupId string) ([]respond.EventRespond, error) {
	if _, err := e.memberRole(groupId, viewerId); err != nil {
		return nil, err
	}

	events, err := e.repos.Event.FindByGroup(groupId)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	rspList := make([]respond.EventRespond, 0, len(events))
	for i := range events {
		rsvps, err := e.repos.Event.FindRsvpsByEvent(events[i].Uuid)
		if err != nil {
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
		going, interested := 0, 0
		for _, r := range rsvps {
			switch r.Status {
			case model.RsvpGoing:
				going++
			case model.RsvpInterested:
				interested++
			}
		}
		rspList = append(rspList, eventRespond(&events[i], going, interested))
	}
	return rspList, nil
}

// Rsvp 提交/变更活动报名状态（仅群成员）
func (e *eventService) Rsvp(userId, eventId string, status string) error {
	switch status {
	case model.RsvpGoing, model.RsvpInterested, model.RsvpCancelled:
	default:
		return errorx.New(errorx.CodeInvalidParam, "无效的报名状态")
	}

	event, err := e.repos.Event.FindByUuid(eventId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "活动不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if _, err := e.memberRole(event.GroupUuid, userId); err != nil {
		return err
	}

	if err := e.repos.Event.UpsertRsvp(&model.EventRsvp{
		EventUuid: eventId,
		UserUuid:  userId,
		Status:    status,
	}); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}
