package recommend

import (
	"context"
	"sync"
	"testing"
	"time"

	"quanzi_server/internal/dao/mysql/repository"
	myredis "quanzi_server/internal/dao/redis"
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

func (f *fakeCache) SubmitTask(action func()) { action() }

type recommendStore struct {
	users  map[string]*model.UserInfo
	groups []model.GroupInfo
	joined map[string][]string // userUuid -> groupUuids

	// 捕获查询参数
	lastTags    []string
	lastExclude []string
	lastQuery   string
	lastRadius  float64
	findByTags  int
}

func newRecommendStore() *recommendStore {
	return &recommendStore{
		users:  make(map[string]*model.UserInfo),
		joined: make(map[string][]string),
	}
}

type fakeUserRepo struct {
	repository.UserRepository
	s *recommendStore
}

func (r *fakeUserRepo) FindByUuid(uuid string) (*model.UserInfo, error) {
	if u, ok := r.s.users[uuid]; ok {
		return u, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "record not found")
}

type fakeGroupRepo struct {
	repository.GroupRepository
	s *recommendStore
}

func (r *fakeGroupRepo) FindByTags(tags []string, excludeUuids []string, limit int) ([]model.GroupInfo, error) {
	r.s.findByTags++
	r.s.lastTags, r.s.lastExclude = tags, excludeUuids
	if len(r.s.groups) > limit {
		return r.s.groups[:limit], nil
	}
	return r.s.groups, nil
}

func (r *fakeGroupRepo) SearchText(query string, limit int) ([]model.GroupInfo, error) {
	r.s.lastQuery = query
	return r.s.groups, nil
}

func (r *fakeGroupRepo) FindNearby(lat, lng, radiusMeters float64, limit int) ([]model.GroupInfo, error) {
	r.s.lastRadius = radiusMeters
	return r.s.groups, nil
}

type fakeMemberRepo struct {
	repository.GroupMemberRepository
	s *recommendStore
}

func (r *fakeMemberRepo) FindGroupUuidsByUser(userUuid string) ([]string, error) {
	return r.s.joined[userUuid], nil
}

func (r *fakeMemberRepo) CountByGroup(groupUuid string) (int64, error) {
	return 5, nil
}

func newRecommendFixture(s *recommendStore) (*recommendService, *fakeCache) {
	cache := newFakeCache()
	repos := &repository.Repositories{
		User:        &fakeUserRepo{s: s},
		Group:       &fakeGroupRepo{s: s},
		GroupMember: &fakeMemberRepo{s: s},
	}
	return NewRecommendService(repos, cache), cache
}

// ==================== 推荐 ====================

func TestRecommendMatchesInterestsExcludingJoined(t *testing.T) {
	s := newRecommendStore()
	s.users["U1"] = &model.UserInfo{Uuid: "U1", Interests: "户外,摄影"}
	s.joined["U1"] = []string{"G_old"}
	s.groups = []model.GroupInfo{
		{Uuid: "G_hike", Name: "登山", Tags: "户外,登山"},
	}
	svc, _ := newRecommendFixture(s)

	rspList, err := svc.RecommendForUser("U1", 10)
	if err != nil {
		t.Fatalf("RecommendForUser: %v", err)
	}
	if len(rspList) != 1 || rspList[0].Uuid != "G_hike" {
		t.Fatalf("rspList = %+v", rspList)
	}
	if rspList[0].MemberCnt != 5 {
		t.Errorf("member count = %d, want 5", rspList[0].MemberCnt)
	}
	if len(s.lastTags) != 2 || s.lastTags[0] != "户外" {
		t.Errorf("query tags = %v", s.lastTags)
	}
	if len(s.lastExclude) != 1 || s.lastExclude[0] != "G_old" {
		t.Errorf("excluded groups = %v", s.lastExclude)
	}
}

func TestRecommendNoInterestsReturnsEmpty(t *testing.T) {
	s := newRecommendStore()
	s.users["U1"] = &model.UserInfo{Uuid: "U1", Interests: ""}
	svc, _ := newRecommendFixture(s)

	rspList, err := svc.RecommendForUser("U1", 10)
	if err != nil {
		t.Fatalf("RecommendForUser: %v", err)
	}
	if len(rspList) != 0 {
		t.Errorf("rspList = %+v, want empty", rspList)
	}
	if s.findByTags != 0 {
		t.Error("no tag query should run without interests")
	}
}

func TestRecommendUnknownUser(t *testing.T) {
	s := newRecommendStore()
	svc, _ := newRecommendFixture(s)

	if _, err := svc.RecommendForUser("U_ghost", 10); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("unknown user should be 404, got %v", err)
	}
}

func TestRecommendServedFromCache(t *testing.T) {
	s := newRecommendStore()
	s.users["U1"] = &model.UserInfo{Uuid: "U1", Interests: "户外"}
	s.groups = []model.GroupInfo{{Uuid: "G_hike", Tags: "户外"}}
	svc, cache := newRecommendFixture(s)

	if _, err := svc.RecommendForUser("U1", 10); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if cache.data["recommend_group_list_U1"] == "" {
		t.Fatal("result should be cached")
	}

	// 第二次命中缓存，不再查库
	if _, err := svc.RecommendForUser("U1", 10); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if s.findByTags != 1 {
		t.Errorf("db queries = %d, want 1", s.findByTags)
	}
}

func TestRecommendLimitClamped(t *testing.T) {
	s := newRecommendStore()
	s.users["U1"] = &model.UserInfo{Uuid: "U1", Interests: "户外"}
	for i := 0; i < 30; i++ {
		s.groups = append(s.groups, model.GroupInfo{Uuid: "G" + string(rune('a'+i)), Tags: "户外"})
	}
	svc, _ := newRecommendFixture(s)

	rspList, err := svc.RecommendForUser("U1", 1000)
	if err != nil {
		t.Fatalf("RecommendForUser: %v", err)
	}
	if len(rspList) != defaultLimit {
		t.Errorf("results = %d, want clamped to %d", len(rspList), defaultLimit)
	}
}

// ==================== 搜索与附近 ====================

func TestSearchTextValidation(t *testing.T) {
	s := newRecommendStore()
	s.groups = []model.GroupInfo{{Uuid: "G1", Name: "登山"}}
	svc, _ := newRecommendFixture(s)

	if _, err := svc.SearchText("", 10); errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Errorf("empty query should be invalid, got %v", err)
	}

	rspList, err := svc.SearchText("登山", 10)
	if err != nil {
		t.Fatalf("SearchText: %v", err)
	}
	if len(rspList) != 1 || s.lastQuery != "登山" {
		t.Errorf("rspList = %+v, query = %q", rspList, s.lastQuery)
	}
}

func TestFindNearbyValidation(t *testing.T) {
	s := newRecommendStore()
	svc, _ := newRecommendFixture(s)

	cases := []struct {
		name             string
		lat, lng, radius float64
	}{
		{"lat too big", 91, 0, 1000},
		{"lng too small", 0, -181, 1000},
		{"zero radius", 39.9, 116.4, 0},
		{"negative radius", 39.9, 116.4, -5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.FindNearby(tc.lat, tc.lng, tc.radius, 10); errorx.GetCode(err) != errorx.CodeInvalidParam {
				t.Errorf("want invalid param, got %v", err)
			}
		})
	}

	if _, err := svc.FindNearby(39.9, 116.4, 5000, 10); err != nil {
		t.Errorf("valid query should pass: %v", err)
	}
	if s.lastRadius != 5000 {
		t.Errorf("radius = %v, want 5000", s.lastRadius)
	}
}
