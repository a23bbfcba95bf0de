package repository

import (
	"quanzi_server/internal/model"

	"gorm.io/gorm"
)

// groupAuditRepository GroupAuditRepository 接口的实现
type groupAuditRepository struct {
	db *gorm.DB
}

// NewGroupAuditRepository 创建 GroupAuditRepository 实例
func NewGroupAuditRepository(db *gorm.DB) GroupAuditRepository {
	return &groupAuditRepository{db: db}
}

// Append 追加一条审计记录
func (r *groupAuditRepository) Append(entry *model.GroupAudit) error {
	if err := r.db.Create(entry).Error; err != nil {
		return wrapDBError(err, "写入审计日志")
	}
	return nil
}

// FindByGroup 按时间倒序查询群组审计记录
func (r *groupAuditRepository) FindByGroup(groupUuid string, limit int) ([]model.GroupAudit, error) {
	var entries []model.GroupAudit
	tx := r.db.Where("group_uuid = ?", groupUuid).Order("created_at DESC, id DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(&entries).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询审计日志 group=%s", groupUuid)
	}
	return entries, nil
}
