package repository

import (
	"quanzi_server/internal/model"

	"gorm.io/gorm"
)

// inviteCodeRepository InviteCodeRepository 接口的实现
type inviteCodeRepository struct {
	db *gorm.DB
}

// NewInviteCodeRepository 创建 InviteCodeRepository 实例
func NewInviteCodeRepository(db *gorm.DB) InviteCodeRepository {
	return &inviteCodeRepository{db: db}
}

// Create 保存新邀请码
func (r *inviteCodeRepository) Create(code *model.InviteCode) error {
	if err := r.db.Create(code).Error; err != nil {
		return wrapDBError(err, "创建邀请码")
	}
	return nil
}

// FindByCode 根据邀请码查找
func (r *inviteCodeRepository) FindByCode(code string) (*model.InviteCode, error) {
	var invite model.InviteCode
	if err := r.db.First(&invite, "code = ?", code).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询邀请码 code=%s", code)
	}
	return &invite, nil
}
