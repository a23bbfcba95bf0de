// Package router 提供 HTTP 路由注册
// 本文件定义发现/推荐相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterDiscoverRoutes 注册发现/推荐相关路由（需要认证）
func (rt *Router) RegisterDiscoverRoutes(rg *gin.RouterGroup) {
	discoverGroup := rg.Group("/discover")
	{
		discoverGroup.GET("/recommend", rt.handlers.Recommend.Recommend) // 兴趣标签推荐
		discoverGroup.GET("/search", rt.handlers.Recommend.Search)       // 关键词搜索
		discoverGroup.GET("/nearby", rt.handlers.Recommend.Nearby)       // 附近群组
	}
}
