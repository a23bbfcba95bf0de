package group

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"quanzi_server/internal/dao/mysql/repository"
	myredis "quanzi_server/internal/dao/redis"
	"quanzi_server/internal/dto/request"
	"quanzi_server/internal/model"
	"quanzi_server/pkg/errorx"
)

// ==================== 测试替身 ====================

type fakeCache struct {
	myredis.AsyncCacheService
	mu   sync.Mutex
	data map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data[key], nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

// DeleteByPattern 仅支持精确键和前缀通配，测试够用
func (f *fakeCache) DeleteByPattern(ctx context.Context, pattern string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range f.data {
		if key == pattern || (strings.HasSuffix(pattern, "*") && strings.HasPrefix(key, prefix)) {
			delete(f.data, key)
		}
	}
	return nil
}

func (f *fakeCache) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok
}

func (f *fakeCache) SubmitTask(action func()) { action() }

// groupStore 群组相关仓储的共享内存状态
type groupStore struct {
	groups   map[string]*model.GroupInfo
	members  map[string]map[string]*model.GroupMember // groupUuid -> userUuid
	requests map[string]map[string]*model.JoinRequest
	invites  map[string]*model.InviteCode
	audits   []model.GroupAudit

	casFailures int // CAS 连续未命中次数（模拟并发变更）
	casAttempts int
}

func newGroupStore() *groupStore {
	return &groupStore{
		groups:   make(map[string]*model.GroupInfo),
		members:  make(map[string]map[string]*model.GroupMember),
		requests: make(map[string]map[string]*model.JoinRequest),
		invites:  make(map[string]*model.InviteCode),
	}
}

func notFound() error { return errorx.New(errorx.CodeNotFound, "record not found") }
func conflict() error { return errorx.New(errorx.CodeConflict, "duplicated key") }

type fakeGroupRepo struct {
	repository.GroupRepository
	s *groupStore
}

func (r *fakeGroupRepo) FindByUuid(uuid string) (*model.GroupInfo, error) {
	if g, ok := r.s.groups[uuid]; ok {
		copied := *g
		return &copied, nil
	}
	return nil, notFound()
}

func (r *fakeGroupRepo) Create(g *model.GroupInfo) error {
	r.s.groups[g.Uuid] = g
	return nil
}

func (r *fakeGroupRepo) UpdateFields(uuid string, updates map[string]interface{}) error {
	g, ok := r.s.groups[uuid]
	if !ok {
		return notFound()
	}
	if v, ok := updates["description"]; ok {
		g.Description = v.(string)
	}
	if v, ok := updates["capacity"]; ok {
		g.Capacity = v.(int)
	}
	if v, ok := updates["tags"]; ok {
		g.Tags = v.(string)
	}
	return nil
}

func (r *fakeGroupRepo) CompareAndSwapVersion(uuid string, oldVersion int64) (bool, error) {
	r.s.casAttempts++
	if r.s.casFailures > 0 {
		r.s.casFailures--
		return false, nil
	}
	g, ok := r.s.groups[uuid]
	if !ok || g.Version != oldVersion {
		return false, nil
	}
	g.Version++
	return true, nil
}

func (r *fakeGroupRepo) HardDelete(uuid string) error {
	delete(r.s.groups, uuid)
	return nil
}

type fakeMemberRepo struct {
	repository.GroupMemberRepository
	s *groupStore
}

func (r *fakeMemberRepo) FindMember(groupUuid, userUuid string) (*model.GroupMember, error) {
	if m, ok := r.s.members[groupUuid][userUuid]; ok {
		return m, nil
	}
	return nil, notFound()
}

func (r *fakeMemberRepo) FindMembersWithUserInfo(groupUuid string) ([]repository.GroupMemberWithUserInfo, error) {
	var out []repository.GroupMemberWithUserInfo
	for _, m := range r.s.members[groupUuid] {
		out = append(out, repository.GroupMemberWithUserInfo{
			UserId: m.UserUuid,
			Role:   m.Role,
		})
	}
	return out, nil
}

func (r *fakeMemberRepo) Create(m *model.GroupMember) error {
	if _, ok := r.s.members[m.GroupUuid][m.UserUuid]; ok {
		return conflict()
	}
	if r.s.members[m.GroupUuid] == nil {
		r.s.members[m.GroupUuid] = make(map[string]*model.GroupMember)
	}
	r.s.members[m.GroupUuid][m.UserUuid] = m
	return nil
}

func (r *fakeMemberRepo) UpdateRole(groupUuid, userUuid string, role string) error {
	m, ok := r.s.members[groupUuid][userUuid]
	if !ok {
		return notFound()
	}
	m.Role = role
	return nil
}

func (r *fakeMemberRepo) Delete(groupUuid, userUuid string) error {
	delete(r.s.members[groupUuid], userUuid)
	return nil
}

func (r *fakeMemberRepo) DeleteByGroupUuid(groupUuid string) error {
	delete(r.s.members, groupUuid)
	return nil
}

func (r *fakeMemberRepo) CountByGroup(groupUuid string) (int64, error) {
	return int64(len(r.s.members[groupUuid])), nil
}

type fakeJoinRequestRepo struct {
	repository.JoinRequestRepository
	s *groupStore
}

func (r *fakeJoinRequestRepo) Find(groupUuid, userUuid string) (*model.JoinRequest, error) {
	if req, ok := r.s.requests[groupUuid][userUuid]; ok {
		return req, nil
	}
	return nil, notFound()
}

func (r *fakeJoinRequestRepo) FindByGroup(groupUuid string) ([]model.JoinRequest, error) {
	var out []model.JoinRequest
	for _, req := range r.s.requests[groupUuid] {
		out = append(out, *req)
	}
	return out, nil
}

func (r *fakeJoinRequestRepo) Create(req *model.JoinRequest) error {
	if _, ok := r.s.requests[req.GroupUuid][req.UserUuid]; ok {
		return conflict()
	}
	if r.s.requests[req.GroupUuid] == nil {
		r.s.requests[req.GroupUuid] = make(map[string]*model.JoinRequest)
	}
	r.s.requests[req.GroupUuid][req.UserUuid] = req
	return nil
}

func (r *fakeJoinRequestRepo) Delete(groupUuid, userUuid string) error {
	delete(r.s.requests[groupUuid], userUuid)
	return nil
}

func (r *fakeJoinRequestRepo) DeleteByGroupUuid(groupUuid string) error {
	delete(r.s.requests, groupUuid)
	return nil
}

type fakeInviteRepo struct {
	repository.InviteCodeRepository
	s *groupStore
}

func (r *fakeInviteRepo) Create(code *model.InviteCode) error {
	if _, ok := r.s.invites[code.Code]; ok {
		return conflict()
	}
	r.s.invites[code.Code] = code
	return nil
}

func (r *fakeInviteRepo) FindByCode(code string) (*model.InviteCode, error) {
	if c, ok := r.s.invites[code]; ok {
		return c, nil
	}
	return nil, notFound()
}

type fakeAuditRepo struct {
	repository.GroupAuditRepository
	s *groupStore
}

func (r *fakeAuditRepo) Append(entry *model.GroupAudit) error {
	entry.CreatedAt = time.Now()
	r.s.audits = append(r.s.audits, *entry)
	return nil
}

func (r *fakeAuditRepo) FindByGroup(groupUuid string, limit int) ([]model.GroupAudit, error) {
	var out []model.GroupAudit
	for i := len(r.s.audits) - 1; i >= 0 && len(out) < limit; i-- {
		if r.s.audits[i].GroupUuid == groupUuid {
			out = append(out, r.s.audits[i])
		}
	}
	return out, nil
}

func newGroupFixture(s *groupStore) *groupService {
	svc, _ := newGroupFixtureWithCache(s)
	return svc
}

func newGroupFixtureWithCache(s *groupStore) (*groupService, *fakeCache) {
	repos := &repository.Repositories{
		Group:       &fakeGroupRepo{s: s},
		GroupMember: &fakeMemberRepo{s: s},
		JoinRequest: &fakeJoinRequestRepo{s: s},
		InviteCode:  &fakeInviteRepo{s: s},
		GroupAudit:  &fakeAuditRepo{s: s},
	}
	cache := newFakeCache()
	return NewGroupService(repos, cache), cache
}

func seedGroup(s *groupStore, uuid string, privacy int8, capacity int) *model.GroupInfo {
	g := &model.GroupInfo{Uuid: uuid, Name: "g", OwnerId: "U_owner", Privacy: privacy, Capacity: capacity}
	s.groups[uuid] = g
	return g
}

func seedMember(s *groupStore, groupUuid, userUuid, role string) {
	if s.members[groupUuid] == nil {
		s.members[groupUuid] = make(map[string]*model.GroupMember)
	}
	s.members[groupUuid][userUuid] = &model.GroupMember{
		GroupUuid: groupUuid, UserUuid: userUuid, Role: role,
	}
}

func lastAudit(s *groupStore) *model.GroupAudit {
	if len(s.audits) == 0 {
		return nil
	}
	return &s.audits[len(s.audits)-1]
}

// ==================== 生命周期 ====================

func TestCreateGroupOwnerBecomesMember(t *testing.T) {
	s := newGroupStore()
	svc := newGroupFixture(s)

	rsp, err := svc.CreateGroup("U_owner", request.CreateGroupRequest{
		Name: "登山俱乐部", Privacy: 1, Tags: []string{"户外", "登山"}, Capacity: 30,
	})
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	if rsp.OwnerId != "U_owner" || rsp.MemberCnt != 1 {
		t.Errorf("rsp = %+v", rsp)
	}
	member := s.members[rsp.Uuid]["U_owner"]
	if member == nil || member.Role != "owner" {
		t.Fatalf("creator should be owner member, got %+v", member)
	}
	if len(rsp.Tags) != 2 {
		t.Errorf("tags = %v", rsp.Tags)
	}
	if a := lastAudit(s); a == nil || a.Action != "create_group" {
		t.Errorf("audit = %+v", a)
	}
}

// 群组写操作要让群详情缓存和所有用户的推荐缓存一起失效
func TestGroupMutationInvalidatesCaches(t *testing.T) {
	s := newGroupStore()
	seedGroup(s, "G1", 0, 0)
	seedMember(s, "G1", "U_admin", "admin")
	svc, cache := newGroupFixtureWithCache(s)

	_ = cache.Set(context.Background(), "group_info_G1", "{}", time.Minute)
	_ = cache.Set(context.Background(), "recommend_group_list_U_a", "[]", time.Minute)
	_ = cache.Set(context.Background(), "recommend_group_list_U_b", "[]", time.Minute)

	desc := "改个简介"
	if err := svc.UpdateGroup("U_admin", "G1", request.UpdateGroupRequest{Description: &desc}); err != nil {
		t.Fatalf("UpdateGroup: %v", err)
	}
	if cache.has("group_info_G1") {
		t.Error("group info cache should be invalidated after update")
	}
	if cache.has("recommend_group_list_U_a") || cache.has("recommend_group_list_U_b") {
		t.Error("recommend caches of all users should be invalidated after a group mutation")
	}

	// 新建群也要清推荐缓存，否则新群在 TTL 内搜不到推荐位
	_ = cache.Set(context.Background(), "recommend_group_list_U_a", "[]", time.Minute)
	if _, err := svc.CreateGroup("U_owner2", request.CreateGroupRequest{Name: "夜跑团"}); err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	if cache.has("recommend_group_list_U_a") {
		t.Error("recommend caches should be invalidated after group creation")
	}
}

func TestUpdateGroupWhitelistAndPermission(t *testing.T) {
	s := newGroupStore()
	seedGroup(s, "G1", 0, 0)
	seedMember(s, "G1", "U_admin", "admin")
	seedMember(s, "G1", "U_member", "member")
	svc := newGroupFixture(s)

	desc := "新描述"
	if err := svc.UpdateGroup("U_admin", "G1", request.UpdateGroupRequest{Description: &desc}); err != nil {
		t.Fatalf("UpdateGroup: %v", err)
	}
	if s.groups["G1"].Description != "新描述" {
		t.Error("description should be updated")
	}
	if s.groups["G1"].Version != 1 {
		t.Errorf("version = %d, want 1", s.groups["G1"].Version)
	}

	if err := svc.UpdateGroup("U_member", "G1", request.UpdateGroupRequest{Description: &desc}); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("member update should be forbidden, got %v", err)
	}
	if err := svc.UpdateGroup("U_admin", "G1", request.UpdateGroupRequest{}); errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Errorf("empty patch should be invalid, got %v", err)
	}
}

func TestDeleteGroupAdminAndAbove(t *testing.T) {
	s := newGroupStore()
	seedGroup(s, "G1", 0, 0)
	seedMember(s, "G1", "U_admin", "admin")
	seedMember(s, "G1", "U_moderator", "moderator")
	s.requests["G1"] = map[string]*model.JoinRequest{
		"U_applicant": {GroupUuid: "G1", UserUuid: "U_applicant"},
	}
	svc := newGroupFixture(s)

	if err := svc.DeleteGroup("U_moderator", "G1"); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("moderator delete should be forbidden, got %v", err)
	}
	if err := svc.DeleteGroup("U_outsider", "G1"); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("outsider delete should be forbidden, got %v", err)
	}
	if err := svc.DeleteGroup("U_admin", "G1"); err != nil {
		t.Fatalf("DeleteGroup: %v", err)
	}
	if _, ok := s.groups["G1"]; ok {
		t.Error("group should be deleted")
	}
	if len(s.members["G1"]) != 0 || len(s.requests["G1"]) != 0 {
		t.Error("members and requests should be cascaded")
	}
	// 审计保留
	if a := lastAudit(s); a == nil || a.Action != "delete_group" {
		t.Errorf("audit = %+v", a)
	}
}

func TestLeaveGroup(t *testing.T) {
	s := newGroupStore()
	seedGroup(s, "G1", 0, 0)
	seedMember(s, "G1", "U_owner", "owner")
	seedMember(s, "G1", "U_member", "member")
	svc := newGroupFixture(s)

	if err := svc.LeaveGroup("U_owner", "G1"); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("owner leave should be forbidden, got %v", err)
	}
	if err := svc.LeaveGroup("U_member", "G1"); err != nil {
		t.Fatalf("LeaveGroup: %v", err)
	}
	if _, ok := s.members["G1"]["U_member"]; ok {
		t.Error("member should be removed")
	}
}

// ==================== 入群 ====================

func TestRequestJoinPublicGroupAutoAdmits(t *testing.T) {
	s := newGroupStore()
	seedGroup(s, "G1", 0, 0)
	svc := newGroupFixture(s)

	joined, err := svc.RequestJoin("U_new", "G1", "")
	if err != nil {
		t.Fatalf("RequestJoin: %v", err)
	}
	if !joined {
		t.Error("public group should auto admit")
	}
	if m := s.members["G1"]["U_new"]; m == nil || m.Role != "member" {
		t.Errorf("member = %+v", m)
	}
	if len(s.requests["G1"]) != 0 {
		t.Error("no pending request should be created for public group")
	}
}

func TestRequestJoinPrivateGroupQueues(t *testing.T) {
	s := newGroupStore()
	seedGroup(s, "G1", 1, 0)
	svc := newGroupFixture(s)

	joined, err := svc.RequestJoin("U_new", "G1", "带我一个")
	if err != nil {
		t.Fatalf("RequestJoin: %v", err)
	}
	if joined {
		t.Error("private group must queue the request")
	}
	if req := s.requests["G1"]["U_new"]; req == nil || req.Message != "带我一个" {
		t.Errorf("request = %+v", req)
	}
	if a := lastAudit(s); a == nil || a.Action != "request_join" || a.ActorUuid != "U_new" {
		t.Errorf("queued request should be audited, got %+v", a)
	}

	// 重复申请 409
	if _, err := svc.RequestJoin("U_new", "G1", "again"); errorx.GetCode(err) != errorx.CodeConflict {
		t.Errorf("duplicate request should conflict, got %v", err)
	}
}

func TestRequestJoinSecretGroupQueuesLikePrivate(t *testing.T) {
	s := newGroupStore()
	seedGroup(s, "G1", 2, 0)
	svc := newGroupFixture(s)

	joined, err := svc.RequestJoin("U_new", "G1", "")
	if err != nil {
		t.Fatalf("RequestJoin: %v", err)
	}
	if joined {
		t.Error("secret group must queue the request")
	}
	if _, ok := s.members["G1"]["U_new"]; ok {
		t.Error("secret group must not auto admit")
	}
}

func TestRequestJoinAlreadyMember(t *testing.T) {
	s := newGroupStore()
	seedGroup(s, "G1", 0, 0)
	seedMember(s, "G1", "U_member", "member")
	svc := newGroupFixture(s)

	if _, err := svc.RequestJoin("U_member", "G1", ""); errorx.GetCode(err) != errorx.CodeConflict {
		t.Errorf("joining twice should conflict, got %v", err)
	}
}

func TestRequestJoinCapacityFull(t *testing.T) {
	s := newGroupStore()
	seedGroup(s, "G1", 0, 2)
	seedMember(s, "G1", "U_owner", "owner")
	seedMember(s, "G1", "U_member", "member")
	svc := newGroupFixture(s)

	if _, err := svc.RequestJoin("U_new", "G1", ""); errorx.GetCode(err) != errorx.CodeConflict {
		t.Errorf("full group should conflict, got %v", err)
	}
	if _, ok := s.members["G1"]["U_new"]; ok {
		t.Error("member must not be created when full")
	}
}

// ==================== 审批 ====================

func TestApproveJoin(t *testing.T) {
	s := newGroupStore()
	seedGroup(s, "G1", 1, 0)
	seedMember(s, "G1", "U_admin", "admin")
	seedMember(s, "G1", "U_moderator", "moderator")
	s.requests["G1"] = map[string]*model.JoinRequest{
		"U_new": {GroupUuid: "G1", UserUuid: "U_new"},
	}
	svc := newGroupFixture(s)

	// moderator 无权审批
	if err := svc.ApproveJoin("U_moderator", "G1", "U_new"); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("moderator approve should be forbidden, got %v", err)
	}

	if err := svc.ApproveJoin("U_admin", "G1", "U_new"); err != nil {
		t.Fatalf("ApproveJoin: %v", err)
	}
	if m := s.members["G1"]["U_new"]; m == nil || m.Role != "member" {
		t.Errorf("approved member = %+v", m)
	}
	if _, ok := s.requests["G1"]["U_new"]; ok {
		t.Error("request should be consumed")
	}

	// 申请已不存在
	if err := svc.ApproveJoin("U_admin", "G1", "U_new"); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("missing request should be 404, got %v", err)
	}
}

func TestRejectJoin(t *testing.T) {
	s := newGroupStore()
	seedGroup(s, "G1", 1, 0)
	seedMember(s, "G1", "U_admin", "admin")
	s.requests["G1"] = map[string]*model.JoinRequest{
		"U_new": {GroupUuid: "G1", UserUuid: "U_new"},
	}
	svc := newGroupFixture(s)

	if err := svc.RejectJoin("U_admin", "G1", "U_new"); err != nil {
		t.Fatalf("RejectJoin: %v", err)
	}
	if _, ok := s.requests["G1"]["U_new"]; ok {
		t.Error("request should be removed")
	}
	if _, ok := s.members["G1"]["U_new"]; ok {
		t.Error("rejected applicant must not become member")
	}
}

// ==================== 踢人与提升 ====================

func TestKickMemberStrictRank(t *testing.T) {
	cases := []struct {
		name    string
		actor   string
		target  string
		allowed bool
	}{
		{"owner kicks admin", "U_owner", "U_admin", true},
		{"admin kicks member", "U_admin", "U_member", true},
		{"moderator kicks member", "U_moderator", "U_member", true},
		{"admin kicks admin peer", "U_admin", "U_admin2", false},
		{"admin kicks owner", "U_admin", "U_owner", false},
		{"member kicks member", "U_member", "U_member2", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newGroupStore()
			seedGroup(s, "G1", 0, 0)
			seedMember(s, "G1", "U_owner", "owner")
			seedMember(s, "G1", "U_admin", "admin")
			seedMember(s, "G1", "U_admin2", "admin")
			seedMember(s, "G1", "U_moderator", "moderator")
			seedMember(s, "G1", "U_member", "member")
			seedMember(s, "G1", "U_member2", "member")
			svc := newGroupFixture(s)

			err := svc.KickMember(tc.actor, "G1", tc.target)
			if tc.allowed {
				if err != nil {
					t.Fatalf("KickMember: %v", err)
				}
				if _, ok := s.members["G1"][tc.target]; ok {
					t.Error("target should be removed")
				}
			} else {
				if errorx.GetCode(err) != errorx.CodeForbidden {
					t.Errorf("want forbidden, got %v", err)
				}
			}
		})
	}
}

func TestPromoteMemberSetsAdmin(t *testing.T) {
	s := newGroupStore()
	seedGroup(s, "G1", 0, 0)
	seedMember(s, "G1", "U_owner", "owner")
	seedMember(s, "G1", "U_admin", "admin")
	seedMember(s, "G1", "U_moderator", "moderator")
	seedMember(s, "G1", "U_member", "member")
	svc := newGroupFixture(s)

	// admin 提升 moderator，结果总是 admin 而不是逐级
	if err := svc.PromoteMember("U_admin", "G1", "U_moderator"); err != nil {
		t.Fatalf("PromoteMember: %v", err)
	}
	if got := s.members["G1"]["U_moderator"].Role; got != "admin" {
		t.Errorf("role = %q, want admin", got)
	}

	// admin 不能提升同级 admin
	if err := svc.PromoteMember("U_admin", "G1", "U_moderator"); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("promoting a peer admin should be forbidden, got %v", err)
	}

	// 目标不是成员
	if err := svc.PromoteMember("U_owner", "G1", "U_ghost"); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("missing target should be 404, got %v", err)
	}

	if err := svc.PromoteMember("U_member", "G1", "U_member"); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("member promote should be forbidden, got %v", err)
	}
}

// ==================== 乐观锁 ====================

func TestGroupCASRetriesThenSucceeds(t *testing.T) {
	s := newGroupStore()
	seedGroup(s, "G1", 0, 0)
	s.casFailures = 2 // 前两次未命中，第三次成功
	svc := newGroupFixture(s)

	joined, err := svc.RequestJoin("U_new", "G1", "")
	if err != nil || !joined {
		t.Fatalf("RequestJoin should succeed after retries, joined=%v err=%v", joined, err)
	}
	if s.casAttempts != 3 {
		t.Errorf("cas attempts = %d, want 3", s.casAttempts)
	}
}

func TestGroupCASExhaustedConflicts(t *testing.T) {
	s := newGroupStore()
	seedGroup(s, "G1", 0, 0)
	s.casFailures = 10
	svc := newGroupFixture(s)

	if _, err := svc.RequestJoin("U_new", "G1", ""); errorx.GetCode(err) != errorx.CodeConflict {
		t.Errorf("exhausted CAS should conflict, got %v", err)
	}
	if _, ok := s.members["G1"]["U_new"]; ok {
		t.Error("member must not be created after exhausted CAS")
	}
}

// ==================== 邀请码 ====================

func TestInviteCodeLifecycle(t *testing.T) {
	s := newGroupStore()
	seedGroup(s, "G1", 1, 0)
	seedMember(s, "G1", "U_admin", "admin")
	seedMember(s, "G1", "U_member", "member")
	svc := newGroupFixture(s)

	if _, err := svc.GenerateInviteCode("U_member", "G1"); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("member generate should be forbidden, got %v", err)
	}

	rsp, err := svc.GenerateInviteCode("U_admin", "G1")
	if err != nil {
		t.Fatalf("GenerateInviteCode: %v", err)
	}
	if len(rsp.Code) != 12 {
		t.Errorf("code length = %d, want 12", len(rsp.Code))
	}

	// 私密群凭邀请码直接入群，绕过审批
	groupId, err := svc.JoinByInvite("U_invitee", rsp.Code)
	if err != nil {
		t.Fatalf("JoinByInvite: %v", err)
	}
	if groupId != "G1" {
		t.Errorf("groupId = %q", groupId)
	}
	if m := s.members["G1"]["U_invitee"]; m == nil || m.Role != "member" {
		t.Errorf("invitee member = %+v", m)
	}

	// 邀请码多次可用
	if _, err := svc.JoinByInvite("U_invitee2", rsp.Code); err != nil {
		t.Fatalf("invite code should be reusable: %v", err)
	}

	// 已是成员 409
	if _, err := svc.JoinByInvite("U_invitee", rsp.Code); errorx.GetCode(err) != errorx.CodeConflict {
		t.Errorf("member joining again should conflict, got %v", err)
	}
}

func TestJoinByInviteExpiredOrUnknown(t *testing.T) {
	s := newGroupStore()
	seedGroup(s, "G1", 1, 0)
	s.invites["deadbeef0000"] = &model.InviteCode{
		Code:      "deadbeef0000",
		GroupUuid: "G1",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	svc := newGroupFixture(s)

	if _, err := svc.JoinByInvite("U_new", "deadbeef0000"); errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Errorf("expired code should be invalid, got %v", err)
	}
	if _, err := svc.JoinByInvite("U_new", "nosuchcode00"); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("unknown code should be 404, got %v", err)
	}
}

// ==================== 详情与审计 ====================

func TestGetGroupJoinRequestsVisibility(t *testing.T) {
	s := newGroupStore()
	seedGroup(s, "G1", 1, 0)
	seedMember(s, "G1", "U_admin", "admin")
	seedMember(s, "G1", "U_member", "member")
	s.requests["G1"] = map[string]*model.JoinRequest{
		"U_new": {GroupUuid: "G1", UserUuid: "U_new", Message: "hi"},
	}
	svc := newGroupFixture(s)

	asMember, err := svc.GetGroup("U_member", "G1")
	if err != nil {
		t.Fatalf("GetGroup: %v", err)
	}
	if len(asMember.JoinRequests) != 0 {
		t.Error("pending requests must be hidden from plain members")
	}
	if asMember.MemberCnt != 2 || len(asMember.Members) != 2 {
		t.Errorf("members = %d/%d", asMember.MemberCnt, len(asMember.Members))
	}

	asAdmin, err := svc.GetGroup("U_admin", "G1")
	if err != nil {
		t.Fatalf("GetGroup: %v", err)
	}
	if len(asAdmin.JoinRequests) != 1 || asAdmin.JoinRequests[0].UserId != "U_new" {
		t.Errorf("admin should see pending requests, got %+v", asAdmin.JoinRequests)
	}

	if _, err := svc.GetGroup("U_member", "G404"); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("unknown group should be 404, got %v", err)
	}
}

func TestGetAuditLogPermissionAndOrder(t *testing.T) {
	s := newGroupStore()
	seedGroup(s, "G1", 0, 0)
	seedMember(s, "G1", "U_owner", "owner")
	seedMember(s, "G1", "U_member", "member")
	svc := newGroupFixture(s)

	if err := svc.KickMember("U_owner", "G1", "U_member"); err != nil {
		t.Fatalf("KickMember: %v", err)
	}

	if _, err := svc.GetAuditLog("U_member", "G1"); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("member audit read should be forbidden, got %v", err)
	}
	entries, err := svc.GetAuditLog("U_owner", "G1")
	if err != nil {
		t.Fatalf("GetAuditLog: %v", err)
	}
	if len(entries) != 1 || entries[0].Action != "kick_member" || entries[0].TargetUuid != "U_member" {
		t.Errorf("entries = %+v", entries)
	}
}
