package repository

import (
	"quanzi_server/internal/model"

	"gorm.io/gorm"
)

// joinRequestRepository JoinRequestRepository 接口的实现
type joinRequestRepository struct {
	db *gorm.DB
}

// NewJoinRequestRepository 创建 JoinRequestRepository 实例
func NewJoinRequestRepository(db *gorm.DB) JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

// Find 查找某用户对某群组的待处理申请
func (r *joinRequestRepository) Find(groupUuid, userUuid string) (*model.JoinRequest, error) {
	var request model.JoinRequest
	if err := r.db.First(&request, "group_uuid = ? AND user_uuid = ?", groupUuid, userUuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询入群申请 group=%s user=%s", groupUuid, userUuid)
	}
	return &request, nil
}

// FindByGroup 查找群组全部待处理申请
func (r *joinRequestRepository) FindByGroup(groupUuid string) ([]model.JoinRequest, error) {
	var requests []model.JoinRequest
	if err := r.db.Where("group_uuid = ?", groupUuid).Find(&requests).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询入群申请列表 group=%s", groupUuid)
	}
	return requests, nil
}

// Create 创建申请，重复申请返回 CodeConflict
func (r *joinRequestRepository) Create(request *model.JoinRequest) error {
	if err := r.db.Create(request).Error; err != nil {
		return wrapDBError(err, "创建入群申请")
	}
	return nil
}

// Delete 删除申请，记录不存在时静默成功
func (r *joinRequestRepository) Delete(groupUuid, userUuid string) error {
	if err := r.db.Where("group_uuid = ? AND user_uuid = ?", groupUuid, userUuid).
		Delete(&model.JoinRequest{}).Error; err != nil {
		return wrapDBErrorf(err, "删除入群申请 group=%s user=%s", groupUuid, userUuid)
	}
	return nil
}

// DeleteByGroupUuid 删除群组全部申请
func (r *joinRequestRepository) DeleteByGroupUuid(groupUuid string) error {
	if err := r.db.Where("group_uuid = ?", groupUuid).
		Delete(&model.JoinRequest{}).Error; err != nil {
		return wrapDBErrorf(err, "删除群组申请 group=%s", groupUuid)
	}
	return nil
}
