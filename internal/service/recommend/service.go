// Package recommend 实现发现与推荐的核心服务层
// service.go
// 核心职责：兴趣标签推荐、关键词搜索、附近群组
// 推荐 = 用户兴趣标签命中的群组，排除已加入的，结果短缓存
package recommend

import (
	"context"
	"encoding/json"
	"time"

	"quanzi_server/internal/dao/mysql/repository"
	myredis "quanzi_server/internal/dao/redis"
	"quanzi_server/internal/dto/respond"
	"quanzi_server/internal/model"
	"quanzi_server/pkg/errorx"

	"go.uber.org/zap"
)

// 结果集默认上限
const defaultLimit = 20

type recommendService struct {
	repos *repository.Repositories
	cache myredis.AsyncCacheService
}

// NewRecommendService 创建推荐服务实例
func NewRecommendService(repos *repository.Repositories, cacheService myredis.AsyncCacheService) *recommendService {
	return &recommendService{
		repos: repos,
		cache: cacheService,
	}
}

func (r *recommendService) groupListRespond(groups []model.GroupInfo) []respond.GroupInfoRespond {
	rspList := make([]respond.GroupInfoRespond, 0, len(groups))
	for i := range groups {
		g := &groups[i]
		memberCnt, err := r.repos.GroupMember.CountByGroup(g.Uuid)
		if err != nil {
			zap.L().Error(err.Error())
		}
		rspList = append(rspList, respond.GroupInfoRespond{
			Uuid:        g.Uuid,
			Name:        g.Name,
			Description: g.Description,
			Dp:          g.Dp,
			OwnerId:     g.OwnerId,
			Privacy:     g.Privacy,
			Tags:        model.SplitTags(g.Tags),
			City:        g.City,
			Latitude:    g.Latitude,
			Longitude:   g.Longitude,
			Capacity:    g.Capacity,
			PinnedPost:  g.PinnedPost,
			MemberCnt:   memberCnt,
			CreatedAt:   g.CreatedAt.Format(time.RFC3339),
		})
	}
	return rspList
}

// RecommendForUser 按兴趣标签推荐未加入的群组
// 无兴趣标签时返回空列表而不是报错，前端据此引导补充资料
func (r *recommendService) RecommendForUser(userId string, limit int) ([]respond.GroupInfoRespond, error) {
	if limit <= 0 || limit > defaultLimit {
		limit = defaultLimit
	}
	cacheKey := "recommend_group_list_" + userId

	// 1. 尝试从缓存获取
	rspString, err := r.cache.Get(context.Background(), cacheKey)
	if err == nil && rspString != "" {
		var cached []respond.GroupInfoRespond
		if err := json.Unmarshal([]byte(rspString), &cached); err == nil {
			return cached, nil
		}
		zap.L().Error("Unmarshal recommend cache error", zap.Error(err))
	} else if err != nil {
		zap.L().Error("Redis get error", zap.Error(err))
	}

	// 2. 缓存未命中 -> 查数据库
	user, err := r.repos.User.FindByUuid(userId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "用户不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	interests := model.SplitTags(user.Interests)
	if len(interests) == 0 {
		return []respond.GroupInfoRespond{}, nil
	}

	joined, err := r.repos.GroupMember.FindGroupUuidsByUser(userId)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	groups, err := r.repos.Group.FindByTags(interests, joined, limit)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	rspList := r.groupListRespond(groups)

	// 3. 回写缓存（短 TTL，入群/建群后自然过期刷新）
	r.cache.SubmitTask(func() {
		rspBytes, err := json.Marshal(rspList)
		if err != nil {
			zap.L().Error("Marshal recommend list error", zap.Error(err))
			return
		}
		if err := r.cache.Set(context.Background(), cacheKey, string(rspBytes), time.Minute*10); err != nil {
			zap.L().Error("Set cache error", zap.Error(err))
		}
	})

	return rspList, nil
}

// SearchText 按关键词搜索群组（名称/描述/标签模糊匹配）
func (r *recommendService) SearchText(query string, limit int) ([]respond.GroupInfoRespond, error) {
	if query == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "搜索关键词不能为空")
	}
	if limit <= 0 || limit > defaultLimit {
		limit = defaultLimit
	}

	groups, err := r.repos.Group.SearchText(query, limit)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	return r.groupListRespond(groups), nil
}

// FindNearby 按坐标半径查找附近群组，按距离升序
func (r *recommendService) FindNearby(lat, lng, radiusMeters float64, limit int) ([]respond.GroupInfoRespond, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, errorx.New(errorx.CodeInvalidParam, "坐标超出范围")
	}
	if radiusMeters <= 0 {
		return nil, errorx.New(errorx.CodeInvalidParam, "半径必须大于 0")
	}
	if limit <= 0 || limit > defaultLimit {
		limit = defaultLimit
	}

	groups, err := r.repos.Group.FindNearby(lat, lng, radiusMeters, limit)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	return r.groupListRespond(groups), nil
}
