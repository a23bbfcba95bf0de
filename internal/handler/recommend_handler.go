// Package handler 提供 HTTP 请求处理器
// 本文件处理发现/推荐相关的 API 请求
package handler

import (
	"strconv"

	"quanzi_server/internal/service"
	"quanzi_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// RecommendHandler 发现/推荐相关 Handler
type RecommendHandler struct {
	recommendSvc service.RecommendService
}

// NewRecommendHandler 创建 RecommendHandler 实例
func NewRecommendHandler(recommendSvc service.RecommendService) *RecommendHandler {
	return &RecommendHandler{recommendSvc: recommendSvc}
}

func parseLimit(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.Query("limit"))
	return limit
}

// Recommend 按兴趣标签推荐群组
// GET /discover/recommend?limit=...
func (h *RecommendHandler) Recommend(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	rsp, err := h.recommendSvc.RecommendForUser(userId, parseLimit(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}

// Search 按关键词搜索群组
// GET /discover/search?q=...&limit=...
func (h *RecommendHandler) Search(c *gin.Context) {
	if _, ok := currentUserId(c); !ok {
		return
	}
	rsp, err := h.recommendSvc.SearchText(c.Query("q"), parseLimit(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}

// Nearby 按坐标半径查找附近群组
// GET /discover/nearby?lat=...&lng=...&radius=...&limit=...
func (h *RecommendHandler) Nearby(c *gin.Context) {
	if _, ok := currentUserId(c); !ok {
		return
	}
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	radius, radiusErr := strconv.ParseFloat(c.Query("radius"), 64)
	if latErr != nil || lngErr != nil || radiusErr != nil {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "lat/lng/radius 必须是数字"))
		return
	}
	rsp, err := h.recommendSvc.FindNearby(lat, lng, radius, parseLimit(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}
