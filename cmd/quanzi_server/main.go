package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"quanzi_server/internal/config"
	dao "quanzi_server/internal/dao/mysql"
	myredis "quanzi_server/internal/dao/redis"
	"quanzi_server/internal/handler"
	"quanzi_server/internal/https_server"
	"quanzi_server/internal/infrastructure/email"
	"quanzi_server/internal/infrastructure/logger"
	"quanzi_server/internal/service"
	"quanzi_server/internal/service/chat"
	"quanzi_server/pkg/util/jwt"
	"quanzi_server/pkg/util/snowflake"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化数据库
	dao.Init()
	zap.L().Info("数据库初始化成功")

	// 4. 初始化 Redis
	myredis.Init()
	zap.L().Info("Redis 初始化成功")

	// 5. 初始化 JWT 与雪花 ID
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	snowflake.Init()

	// 6. 初始化参数校验翻译器
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("init validator translator failed", zap.Error(err))
	}

	// 7. 初始化邮箱验证码服务
	cacheService := myredis.GetCacheService()
	emailSvc := email.NewEmailService(email.NewSender(), cacheService)
	zap.L().Info("邮箱验证码服务初始化成功")

	// 8. 初始化房间消息代理
	// channel 模式单进程内存转发，kafka 模式支持多进程部署
	registry := chat.NewRoomRegistry()
	var broker chat.RoomBroker
	if conf.KafkaConfig.MessageMode == "kafka" {
		// 每个进程独立消费组，广播语义
		broker = chat.NewKafkaBroker(registry, "quanzi_ws_"+uuid.NewString())
	} else {
		broker = chat.NewChannelBroker(registry)
	}
	go broker.Start()
	zap.L().Info("房间消息代理初始化成功", zap.String("mode", conf.KafkaConfig.MessageMode))

	// 9. 初始化 Service 层与 Handler 层 (依赖注入)
	service.InitServices(dao.Repos, cacheService, emailSvc, broker)
	handlers := handler.NewHandlers(service.Svc, registry)
	zap.L().Info("Service/Handler 层初始化成功")

	// 10. 初始化 HTTP 服务器并启动
	engine := https_server.Init(handlers)

	host := conf.MainConfig.Host
	port := conf.MainConfig.Port
	go func() {
		if err := engine.Run(fmt.Sprintf("%s:%d", host, port)); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()
	zap.L().Info("服务器启动", zap.String("host", host), zap.Int("port", port))

	// 设置信号监听
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")
	broker.Close()
	zap.L().Info("服务器已关闭")
}
