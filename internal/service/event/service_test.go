package event

import (
	"testing"
	"time"

	"quanzi_server/internal/dao/mysql/repository"
	"quanzi_server/internal/dto/request"
	"quanzi_server/internal/model"
	"quanzi_server/pkg/errorx"
)

// ==================== 测试替身 ====================

type eventStore struct {
	groups  map[string]*model.GroupInfo
	members map[string]map[string]*model.GroupMember
	events  map[string]*model.EventInfo
	rsvps   map[string]map[string]*model.EventRsvp // eventUuid -> userUuid
}

func newEventStore() *eventStore {
	return &eventStore{
		groups:  make(map[string]*model.GroupInfo),
		members: make(map[string]map[string]*model.GroupMember),
		events:  make(map[string]*model.EventInfo),
		rsvps:   make(map[string]map[string]*model.EventRsvp),
	}
}

func notFound() error { return errorx.New(errorx.CodeNotFound, "record not found") }

type fakeGroupRepo struct {
	repository.GroupRepository
	s *eventStore
}

func (r *fakeGroupRepo) FindByUuid(uuid string) (*model.GroupInfo, error) {
	if g, ok := r.s.groups[uuid]; ok {
		return g, nil
	}
	return nil, notFound()
}

type fakeMemberRepo struct {
	repository.GroupMemberRepository
	s *eventStore
}

func (r *fakeMemberRepo) FindMember(groupUuid, userUuid string) (*model.GroupMember, error) {
	if m, ok := r.s.members[groupUuid][userUuid]; ok {
		return m, nil
	}
	return nil, notFound()
}

type fakeEventRepo struct {
	repository.EventRepository
	s *eventStore
}

func (r *fakeEventRepo) FindByUuid(uuid string) (*model.EventInfo, error) {
	if e, ok := r.s.events[uuid]; ok {
		return e, nil
	}
	return nil, notFound()
}

func (r *fakeEventRepo) FindByGroup(groupUuid string) ([]model.EventInfo, error) {
	var out []model.EventInfo
	for _, e := range r.s.events {
		if e.GroupUuid == groupUuid {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) Create(event *model.EventInfo) error {
	r.s.events[event.Uuid] = event
	return nil
}

func (r *fakeEventRepo) UpsertRsvp(rsvp *model.EventRsvp) error {
	if r.s.rsvps[rsvp.EventUuid] == nil {
		r.s.rsvps[rsvp.EventUuid] = make(map[string]*model.EventRsvp)
	}
	r.s.rsvps[rsvp.EventUuid][rsvp.UserUuid] = rsvp
	return nil
}

func (r *fakeEventRepo) FindRsvpsByEvent(eventUuid string) ([]model.EventRsvp, error) {
	var out []model.EventRsvp
	for _, rsvp := range r.s.rsvps[eventUuid] {
		out = append(out, *rsvp)
	}
	return out, nil
}

func newEventFixture(s *eventStore) *eventService {
	repos := &repository.Repositories{
		Group:       &fakeGroupRepo{s: s},
		GroupMember: &fakeMemberRepo{s: s},
		Event:       &fakeEventRepo{s: s},
	}
	return NewEventService(repos)
}

func seedGroup(s *eventStore, uuid string) {
	s.groups[uuid] = &model.GroupInfo{Uuid: uuid, Name: "g", OwnerId: "U_owner"}
}

func seedMember(s *eventStore, groupUuid, userUuid, role string) {
	if s.members[groupUuid] == nil {
		s.members[groupUuid] = make(map[string]*model.GroupMember)
	}
	s.members[groupUuid][userUuid] = &model.GroupMember{
		GroupUuid: groupUuid, UserUuid: userUuid, Role: role,
	}
}

// ==================== 创建 ====================

func TestCreateEventAdminOnly(t *testing.T) {
	s := newEventStore()
	seedGroup(s, "G1")
	seedMember(s, "G1", "U_admin", "admin")
	seedMember(s, "G1", "U_moderator", "moderator")
	svc := newEventFixture(s)

	start := time.Now().Add(24 * time.Hour)
	req := request.CreateEventRequest{Title: "周末徒步", Location: "香山", StartAt: start}

	if _, err := svc.CreateEvent("U_moderator", "G1", req); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("moderator create should be forbidden, got %v", err)
	}
	if _, err := svc.CreateEvent("U_outsider", "G1", req); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("outsider create should be forbidden, got %v", err)
	}
	if _, err := svc.CreateEvent("U_admin", "G404", req); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("unknown group should be 404, got %v", err)
	}

	rsp, err := svc.CreateEvent("U_admin", "G1", req)
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if len(rsp.Uuid) == 0 || rsp.Uuid[0] != 'E' {
		t.Errorf("uuid = %q, want E prefix", rsp.Uuid)
	}
	if rsp.GoingCnt != 0 || rsp.EndAt != "" {
		t.Errorf("rsp = %+v", rsp)
	}
	if s.events[rsp.Uuid].CreatedBy != "U_admin" {
		t.Error("creator should be recorded")
	}
}

func TestCreateEventRejectsBadTimeRange(t *testing.T) {
	s := newEventStore()
	seedGroup(s, "G1")
	seedMember(s, "G1", "U_admin", "admin")
	svc := newEventFixture(s)

	start := time.Now().Add(24 * time.Hour)
	_, err := svc.CreateEvent("U_admin", "G1", request.CreateEventRequest{
		Title: "x", StartAt: start, EndAt: start.Add(-time.Hour),
	})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Errorf("end before start should be invalid, got %v", err)
	}
}

// ==================== 报名 ====================

func TestRsvpUpsertOverwritesStatus(t *testing.T) {
	s := newEventStore()
	seedGroup(s, "G1")
	seedMember(s, "G1", "U_member", "member")
	s.events["E1"] = &model.EventInfo{Uuid: "E1", GroupUuid: "G1", StartAt: time.Now()}
	svc := newEventFixture(s)

	if err := svc.Rsvp("U_member", "E1", model.RsvpGoing); err != nil {
		t.Fatalf("Rsvp: %v", err)
	}
	// 重复提交覆盖而不是新增
	if err := svc.Rsvp("U_member", "E1", model.RsvpCancelled); err != nil {
		t.Fatalf("Rsvp overwrite: %v", err)
	}
	if len(s.rsvps["E1"]) != 1 {
		t.Fatalf("rsvp rows = %d, want 1", len(s.rsvps["E1"]))
	}
	if s.rsvps["E1"]["U_member"].Status != model.RsvpCancelled {
		t.Errorf("status = %q, want cancelled", s.rsvps["E1"]["U_member"].Status)
	}
}

func TestRsvpValidation(t *testing.T) {
	s := newEventStore()
	seedGroup(s, "G1")
	seedMember(s, "G1", "U_member", "member")
	s.events["E1"] = &model.EventInfo{Uuid: "E1", GroupUuid: "G1", StartAt: time.Now()}
	svc := newEventFixture(s)

	if err := svc.Rsvp("U_member", "E1", "maybe"); errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Errorf("unknown status should be invalid, got %v", err)
	}
	if err := svc.Rsvp("U_member", "E404", model.RsvpGoing); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("unknown event should be 404, got %v", err)
	}
	if err := svc.Rsvp("U_outsider", "E1", model.RsvpGoing); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("non-member rsvp should be forbidden, got %v", err)
	}
}

// ==================== 列表 ====================

func TestListEventsCountsRsvps(t *testing.T) {
	s := newEventStore()
	seedGroup(s, "G1")
	seedMember(s, "G1", "U_member", "member")
	s.events["E1"] = &model.EventInfo{Uuid: "E1", GroupUuid: "G1", StartAt: time.Now()}
	s.rsvps["E1"] = map[string]*model.EventRsvp{
		"U_a": {EventUuid: "E1", UserUuid: "U_a", Status: model.RsvpGoing},
		"U_b": {EventUuid: "E1", UserUuid: "U_b", Status: model.RsvpGoing},
		"U_c": {EventUuid: "E1", UserUuid: "U_c", Status: model.RsvpInterested},
		"U_d": {EventUuid: "E1", UserUuid: "U_d", Status: model.RsvpCancelled},
	}
	svc := newEventFixture(s)

	if _, err := svc.ListEvents("U_outsider", "G1"); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("non-member list should be forbidden, got %v", err)
	}

	events, err := svc.ListEvents("U_member", "G1")
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	// cancelled 不计入任何统计
	if events[0].GoingCnt != 2 || events[0].InterestedCnt != 1 {
		t.Errorf("counts = %d going / %d interested, want 2/1", events[0].GoingCnt, events[0].InterestedCnt)
	}
}
