// Package repository 提供数据访问层的具体实现
// 本文件实现 GroupRepository 接口，处理群组相关的数据库操作
package repository

import (
	"strings"

	"quanzi_server/internal/model"

	"gorm.io/gorm"
)

// groupRepository GroupRepository 接口的实现
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository 创建 GroupRepository 实例
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

// FindByUuid 根据 UUID 查找群组
func (r *groupRepository) FindByUuid(uuid string) (*model.GroupInfo, error) {
	var group model.GroupInfo
	if err := r.db.First(&group, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询群组 uuid=%s", uuid)
	}
	return &group, nil
}

// Create 创建群组
func (r *groupRepository) Create(group *model.GroupInfo) error {
	if err := r.db.Create(group).Error; err != nil {
		return wrapDBError(err, "创建群组")
	}
	return nil
}

// UpdateFields 按字段更新群组
// 可更新字段的白名单由 Service 层控制，名称与群主不会出现在 updates 中
func (r *groupRepository) UpdateFields(uuid string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	if err := r.db.Model(&model.GroupInfo{}).Where("uuid = ?", uuid).
		Updates(updates).Error; err != nil {
		return wrapDBErrorf(err, "更新群组 uuid=%s", uuid)
	}
	return nil
}

// CompareAndSwapVersion 版本号 CAS
// UPDATE ... WHERE uuid = ? AND version = ?，影响行数为 0 说明有并发变更
func (r *groupRepository) CompareAndSwapVersion(uuid string, oldVersion int64) (bool, error) {
	result := r.db.Model(&model.GroupInfo{}).
		Where("uuid = ? AND version = ?", uuid, oldVersion).
		UpdateColumn("version", gorm.Expr("version + ?", 1))
	if result.Error != nil {
		return false, wrapDBErrorf(result.Error, "群组版本CAS uuid=%s", uuid)
	}
	return result.RowsAffected == 1, nil
}

// HardDelete 物理删除群组行
// 活动与群聊不级联删除
func (r *groupRepository) HardDelete(uuid string) error {
	if err := r.db.Unscoped().Where("uuid = ?", uuid).
		Delete(&model.GroupInfo{}).Error; err != nil {
		return wrapDBErrorf(err, "删除群组 uuid=%s", uuid)
	}
	return nil
}

// haversineExpr 球面距离（米），参数顺序: lat, lng, lat
// LEAST 防止浮点误差导致 ACOS 参数越界
const haversineExpr = "(6371000 * ACOS(LEAST(1.0, " +
	"COS(RADIANS(?)) * COS(RADIANS(latitude)) * COS(RADIANS(longitude) - RADIANS(?)) + " +
	"SIN(RADIANS(?)) * SIN(RADIANS(latitude)))))"

// FindNearby 按坐标半径查找群组，按距离升序，隐秘群不参与发现
func (r *groupRepository) FindNearby(lat, lng float64, radiusMeters float64, limit int) ([]model.GroupInfo, error) {
	var groups []model.GroupInfo
	err := r.db.Model(&model.GroupInfo{}).
		Select("group_info.*, "+haversineExpr+" AS distance", lat, lng, lat).
		Where("privacy <> ?", model.PrivacySecret).
		Having("distance <= ?", radiusMeters).
		Order("distance ASC").
		Limit(limit).
		Find(&groups).Error
	if err != nil {
		return nil, wrapDBError(err, "附近群组查询")
	}
	return groups, nil
}

// SearchText 按名称/描述/标签模糊搜索，隐秘群不参与发现
func (r *groupRepository) SearchText(query string, limit int) ([]model.GroupInfo, error) {
	var groups []model.GroupInfo
	pattern := "%" + query + "%"
	err := r.db.Where("privacy <> ?", model.PrivacySecret).
		Where("name LIKE ? OR description LIKE ? OR tags LIKE ?",
			pattern, pattern, pattern).
		Limit(limit).
		Find(&groups).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "搜索群组 query=%s", query)
	}
	return groups, nil
}

// FindByTags 按标签查找群组，排除已加入的群组
func (r *groupRepository) FindByTags(tags []string, excludeUuids []string, limit int) ([]model.GroupInfo, error) {
	var groups []model.GroupInfo
	if len(tags) == 0 {
		return groups, nil
	}

	tx := r.db.Model(&model.GroupInfo{}).
		Where("privacy <> ?", model.PrivacySecret)
	conditions := make([]string, 0, len(tags))
	args := make([]interface{}, 0, len(tags))
	for _, tag := range tags {
		conditions = append(conditions, "tags LIKE ?")
		args = append(args, "%"+tag+"%")
	}
	tx = tx.Where(strings.Join(conditions, " OR "), args...)

	if len(excludeUuids) > 0 {
		tx = tx.Where("uuid NOT IN ?", excludeUuids)
	}

	if err := tx.Limit(limit).Find(&groups).Error; err != nil {
		return nil, wrapDBError(err, "按标签查询群组")
	}
	return groups, nil
}
