// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"quanzi_server/internal/dao/mysql/repository"
	myredis "quanzi_server/internal/dao/redis"
	"quanzi_server/internal/infrastructure/email"
	"quanzi_server/internal/service/chat"
	"quanzi_server/internal/service/event"
	"quanzi_server/internal/service/group"
	"quanzi_server/internal/service/recommend"
	"quanzi_server/internal/service/user"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过 service.Svc 访问各个 Service
type Services struct {
	User      UserService      // 用户 Service
	Group     GroupService     // 群组 Service
	Chat      ChatService      // 聊天 Service
	Event     EventService     // 活动 Service
	Recommend RecommendService // 推荐 Service
}

// NewServices 创建并注入所有 Service 实例
// 依赖注入流程：
//  1. 接收 Repository 聚合、缓存、邮件服务与房间消息代理
//  2. 创建各个 Service 实例，注入依赖
//  3. 返回 Services 聚合
func NewServices(repos *repository.Repositories, cache myredis.AsyncCacheService, emailSvc email.EmailService, broker chat.RoomBroker) *Services {
	userSvc := user.NewUserService(repos, cache, emailSvc)
	groupSvc := group.NewGroupService(repos, cache)
	chatSvc := chat.NewChatService(repos, cache, broker)
	eventSvc := event.NewEventService(repos)
	recommendSvc := recommend.NewRecommendService(repos, cache)

	return &Services{
		User:      userSvc,
		Group:     groupSvc,
		Chat:      chatSvc,
		Event:     eventSvc,
		Recommend: recommendSvc,
	}
}

// Svc 全局 Services 实例
// Handler 层通过 service.Svc.Group.CreateGroup() 等方式调用
var Svc *Services

// InitServices 初始化全局 Services 实例
// 应在 main.go 中调用，在 Repository/Redis/邮件/代理初始化之后
func InitServices(repos *repository.Repositories, cache myredis.AsyncCacheService, emailSvc email.EmailService, broker chat.RoomBroker) {
	Svc = NewServices(repos, cache, emailSvc, broker)
}
