package repository

import (
	"quanzi_server/internal/model"

	"gorm.io/gorm"
)

// groupMemberRepository GroupMemberRepository 接口的实现
type groupMemberRepository struct {
	db *gorm.DB
}

// NewGroupMemberRepository 创建 GroupMemberRepository 实例
func NewGroupMemberRepository(db *gorm.DB) GroupMemberRepository {
	return &groupMemberRepository{db: db}
}

// FindMember 查找某群组内的某成员
func (r *groupMemberRepository) FindMember(groupUuid, userUuid string) (*model.GroupMember, error) {
	var member model.GroupMember
	if err := r.db.First(&member, "group_uuid = ? AND user_uuid = ?", groupUuid, userUuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询群成员 group=%s user=%s", groupUuid, userUuid)
	}
	return &member, nil
}

// FindMembers 查找群组全部成员
func (r *groupMemberRepository) FindMembers(groupUuid string) ([]model.GroupMember, error) {
	var members []model.GroupMember
	if err := r.db.Where("group_uuid = ?", groupUuid).Find(&members).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询群成员列表 group=%s", groupUuid)
	}
	return members, nil
}

// FindMembersWithUserInfo 查找群成员并关联用户资料
func (r *groupMemberRepository) FindMembersWithUserInfo(groupUuid string) ([]GroupMemberWithUserInfo, error) {
	var results []GroupMemberWithUserInfo
	err := r.db.Table("group_member").
		Select("group_member.user_uuid AS user_id, user_info.nickname, user_info.avatar, group_member.role").
		Joins("JOIN user_info ON user_info.uuid = group_member.user_uuid").
		Where("group_member.group_uuid = ? AND group_member.deleted_at IS NULL", groupUuid).
		Scan(&results).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询群成员资料 group=%s", groupUuid)
	}
	return results, nil
}

// FindGroupUuidsByUser 查找用户加入的所有群组 ID
func (r *groupMemberRepository) FindGroupUuidsByUser(userUuid string) ([]string, error) {
	var groupUuids []string
	err := r.db.Model(&model.GroupMember{}).
		Where("user_uuid = ?", userUuid).
		Pluck("group_uuid", &groupUuids).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询用户群组 user=%s", userUuid)
	}
	return groupUuids, nil
}

// Create 添加群成员，重复添加返回 CodeConflict
func (r *groupMemberRepository) Create(member *model.GroupMember) error {
	if err := r.db.Create(member).Error; err != nil {
		return wrapDBError(err, "添加群成员")
	}
	return nil
}

// UpdateRole 更新成员角色
func (r *groupMemberRepository) UpdateRole(groupUuid, userUuid string, role string) error {
	if err := r.db.Model(&model.GroupMember{}).
		Where("group_uuid = ? AND user_uuid = ?", groupUuid, userUuid).
		Update("role", role).Error; err != nil {
		return wrapDBErrorf(err, "更新成员角色 group=%s user=%s", groupUuid, userUuid)
	}
	return nil
}

// Delete 移除成员
func (r *groupMemberRepository) Delete(groupUuid, userUuid string) error {
	if err := r.db.Where("group_uuid = ? AND user_uuid = ?", groupUuid, userUuid).
		Delete(&model.GroupMember{}).Error; err != nil {
		return wrapDBErrorf(err, "移除群成员 group=%s user=%s", groupUuid, userUuid)
	}
	return nil
}

// DeleteByGroupUuid 删除群组所有成员
func (r *groupMemberRepository) DeleteByGroupUuid(groupUuid string) error {
	if err := r.db.Where("group_uuid = ?", groupUuid).
		Delete(&model.GroupMember{}).Error; err != nil {
		return wrapDBErrorf(err, "删除群组成员 group=%s", groupUuid)
	}
	return nil
}

// CountByGroup 统计群成员数
func (r *groupMemberRepository) CountByGroup(groupUuid string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.GroupMember{}).
		Where("group_uuid = ?", groupUuid).Count(&count).Error; err != nil {
		return 0, wrapDBErrorf(err, "统计群成员 group=%s", groupUuid)
	}
	return count, nil
}
