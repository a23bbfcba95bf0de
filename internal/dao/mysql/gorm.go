// Package dao 提供数据访问层的初始化和全局数据库实例管理
// 负责建立 MySQL 连接、自动迁移表结构、初始化 Repository 层
package dao

import (
	"fmt"

	"quanzi_server/internal/config"
	"quanzi_server/internal/dao/mysql/repository"
	"quanzi_server/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// GormDB 全局 GORM 数据库实例
var GormDB *gorm.DB

// Repos 全局 Repository 实例集合
// 聚合所有 Repository，供 Service 层通过依赖注入使用
var Repos *repository.Repositories

// Init 初始化数据库连接和 Repository 层
func Init() {
	conf := config.GetConfig()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.MysqlConfig.User,
		conf.MysqlConfig.Password,
		conf.MysqlConfig.Host,
		conf.MysqlConfig.Port,
		conf.MysqlConfig.DatabaseName,
	)

	var err error
	// TranslateError 开启方言错误转换，
	// 唯一键冲突统一转成 gorm.ErrDuplicatedKey，供会话首建竞争等场景识别
	GormDB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	// AutoMigrate 自动迁移表结构
	// 表不存在则创建，字段变更则更新，不会删除已有字段或数据
	err = GormDB.AutoMigrate(
		&model.UserInfo{},
		&model.GroupInfo{},
		&model.GroupMember{},
		&model.JoinRequest{},
		&model.InviteCode{},
		&model.GroupAudit{},
		&model.Conversation{},
		&model.Message{},
		&model.GroupChat{},
		&model.GroupMessage{},
		&model.EventInfo{},
		&model.EventRsvp{},
	)
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	Repos = repository.NewRepositories(GormDB)
}
