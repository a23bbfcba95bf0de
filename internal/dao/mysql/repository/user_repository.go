// Package repository 提供数据访问层的具体实现
// 本文件实现 UserRepository 接口
package repository

import (
	"quanzi_server/internal/model"

	"gorm.io/gorm"
)

// userRepository UserRepository 接口的实现
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建 UserRepository 实例
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByUuid 根据 UUID 查找用户
func (r *userRepository) FindByUuid(uuid string) (*model.UserInfo, error) {
	var user model.UserInfo
	if err := r.db.First(&user, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 uuid=%s", uuid)
	}
	return &user, nil
}

// FindByEmail 根据邮箱查找用户
func (r *userRepository) FindByEmail(email string) (*model.UserInfo, error) {
	var user model.UserInfo
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 email=%s", email)
	}
	return &user, nil
}

// FindByUuids 批量根据 UUID 查找用户
func (r *userRepository) FindByUuids(uuids []string) ([]model.UserInfo, error) {
	var users []model.UserInfo
	if len(uuids) == 0 {
		return users, nil
	}
	if err := r.db.Where("uuid IN ?", uuids).Find(&users).Error; err != nil {
		return nil, wrapDBError(err, "批量查询用户")
	}
	return users, nil
}

// Create 创建新用户，邮箱重复时返回 CodeConflict
func (r *userRepository) Create(user *model.UserInfo) error {
	if err := r.db.Create(user).Error; err != nil {
		return wrapDBError(err, "创建用户")
	}
	return nil
}

// Update 更新用户信息
func (r *userRepository) Update(user *model.UserInfo) error {
	if err := r.db.Save(user).Error; err != nil {
		return wrapDBError(err, "更新用户")
	}
	return nil
}

// MarkEmailVerified 标记邮箱已验证
func (r *userRepository) MarkEmailVerified(uuid string) error {
	if err := r.db.Model(&model.UserInfo{}).Where("uuid = ?", uuid).
		Update("email_verified", int8(1)).Error; err != nil {
		return wrapDBErrorf(err, "标记邮箱已验证 uuid=%s", uuid)
	}
	return nil
}
