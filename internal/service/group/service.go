// Package group 实现群组系统的核心服务层
// service.go
// 核心职责：群组生命周期、成员管理、入群审批、邀请码与审计日志
// 1. 成员相关的写操作都在事务内做群组版本号 CAS，并发变更时重读重试
// 2. 管理动作统一走 role.Can 鉴权
// 3. 每个管理动作在事务内追加一条审计记录
package group

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quanzi_server/internal/dao/mysql/repository"
	myredis "quanzi_server/internal/dao/redis"
	"quanzi_server/internal/dto/request"
	"quanzi_server/internal/dto/respond"
	"quanzi_server/internal/model"
	"quanzi_server/pkg/constants"
	"quanzi_server/pkg/errorx"
	"quanzi_server/pkg/role"
	"quanzi_server/pkg/util/random"

	"go.uber.org/zap"
)

// 审计动作名
const (
	auditCreateGroup    = "create_group"
	auditUpdateGroup    = "update_group"
	auditDeleteGroup    = "delete_group"
	auditRequestJoin    = "request_join"
	auditJoinGroup      = "join_group"
	auditLeaveGroup     = "leave_group"
	auditApproveJoin    = "approve_join"
	auditRejectJoin     = "reject_join"
	auditKickMember     = "kick_member"
	auditPromoteMember  = "promote_member"
	auditGenerateInvite = "generate_invite"
	auditJoinByInvite   = "join_by_invite"
)

// errVersionConflict CAS 未命中的内部信号，触发重读重试
var errVersionConflict = errors.New("group version conflict")

// denied 鉴权失败错误，指明动作与所需角色
func denied(action role.Action, requirement string) error {
	return errorx.Newf(errorx.CodeForbidden, "%s 需要%s", action, requirement)
}

type groupService struct {
	repos *repository.Repositories
	cache myredis.AsyncCacheService
}

// NewGroupService 创建群组服务实例
func NewGroupService(repos *repository.Repositories, cacheService myredis.AsyncCacheService) *groupService {
	return &groupService{
		repos: repos,
		cache: cacheService,
	}
}

// findGroup 查群组，不存在映射为 404
func (g *groupService) findGroup(groupId string) (*model.GroupInfo, error) {
	group, err := g.repos.Group.FindByUuid(groupId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "群组不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	return group, nil
}

// memberRole 查成员角色，非成员返回 Forbidden
func (g *groupService) memberRole(groupId, userId string) (role.Role, error) {
	member, err := g.repos.GroupMember.FindMember(groupId, userId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return "", errorx.New(errorx.CodeForbidden, "不是群成员")
		}
		zap.L().Error(err.Error())
		return "", errorx.ErrServerBusy
	}
	return role.Role(member.Role), nil
}

// withGroupCAS 在事务内执行成员相关写操作，并对群组版本号做 CAS
// CAS 未命中说明期间有并发成员变更，重读群组后重试，最多重试
// GROUP_CAS_MAX_RETRY 次，仍失败返回 409
func (g *groupService) withGroupCAS(groupId string, mutate func(txRepos *repository.Repositories, group *model.GroupInfo) error) error {
	for attempt := 0; attempt < constants.GROUP_CAS_MAX_RETRY; attempt++ {
		group, err := g.findGroup(groupId)
		if err != nil {
			return err
		}

		err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
			ok, casErr := txRepos.Group.CompareAndSwapVersion(group.Uuid, group.Version)
			if casErr != nil {
				return casErr
			}
			if !ok {
				return errVersionConflict
			}
			return mutate(txRepos, group)
		})

		if errors.Is(err, errVersionConflict) {
			zap.L().Warn("群组版本冲突，重试", zap.String("group", groupId))
			continue
		}
		if err == nil {
			g.invalidateGroupCache(groupId)
		}
		return err
	}
	return errorx.New(errorx.CodeConflict, "群组并发操作冲突，请重试")
}

// invalidateGroupCache 群组资料或成员变更后失效相关缓存
// 推荐结果依赖标签与已加入群组，用户维度无法枚举，按前缀批量清除
func (g *groupService) invalidateGroupCache(groupId string) {
	g.cache.SubmitTask(func() {
		ctx := context.Background()
		if err := g.cache.Delete(ctx, "group_info_"+groupId); err != nil {
			zap.L().Error(err.Error())
		}
		if err := g.cache.DeleteByPattern(ctx, "recommend_group_list_*"); err != nil {
			zap.L().Error(err.Error())
		}
	})
}

func groupInfoRespond(group *model.GroupInfo, memberCnt int64) respond.GroupInfoRespond {
	return respond.GroupInfoRespond{
		Uuid:        group.Uuid,
		Name:        group.Name,
		Description: group.Description,
		Dp:          group.Dp,
		OwnerId:     group.OwnerId,
		Privacy:     group.Privacy,
		Tags:        model.SplitTags(group.Tags),
		City:        group.City,
		Latitude:    group.Latitude,
		Longitude:   group.Longitude,
		Capacity:    group.Capacity,
		PinnedPost:  group.PinnedPost,
		MemberCnt:   memberCnt,
		CreatedAt:   group.CreatedAt.Format(time.RFC3339),
	}
}

// CreateGroup 创建群组，创建者自动成为 owner 成员
func (g *groupService) CreateGroup(ownerId string, req request.CreateGroupRequest) (*respond.GroupInfoRespond, error) {
	group := &model.GroupInfo{
		Uuid:        random.GetEntityUuid("G"),
		Name:        req.Name,
		Description: req.Description,
		Dp:          req.Dp,
		OwnerId:     ownerId,
		Privacy:     req.Privacy,
		Tags:        model.JoinTags(req.Tags),
		City:        req.City,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Capacity:    req.Capacity,
	}

	err := g.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Group.Create(group); err != nil {
			return err
		}
		member := model.GroupMember{
			GroupUuid: group.Uuid,
			UserUuid:  ownerId,
			Role:      string(role.Owner),
		}
		if err := txRepos.GroupMember.Create(&member); err != nil {
			return err
		}
		return txRepos.GroupAudit.Append(&model.GroupAudit{
			GroupUuid: group.Uuid,
			Action:    auditCreateGroup,
			ActorUuid: ownerId,
		})
	})
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	// 新群要能立即出现在推荐结果里
	g.invalidateGroupCache(group.Uuid)

	rsp := groupInfoRespond(group, 1)
	return &rsp, nil
}

// GetGroup 获取群组详情
// 基本信息与成员列表走缓存；待审批申请仅 admin 以上可见，且总是查库
func (g *groupService) GetGroup(viewerId, groupId string) (*respond.GroupDetailRespond, error) {
	cacheKey := "group_info_" + groupId

	var detail *respond.GroupDetailRespond

	// 1. 尝试从缓存获取
	rspString, err := g.cache.Get(context.Background(), cacheKey)
	if err == nil && rspString != "" {
		var cached respond.GroupDetailRespond
		if err := json.Unmarshal([]byte(rspString), &cached); err == nil {
			detail = &cached
		} else {
			zap.L().Error("Unmarshal group detail cache error", zap.Error(err))
		}
	} else if err != nil {
		zap.L().Error("Redis get error", zap.Error(err))
	}

	// 2. 缓存未命中 -> 查数据库并回写
	if detail == nil {
		group, err := g.findGroup(groupId)
		if err != nil {
			return nil, err
		}
		memberCnt, err := g.repos.GroupMember.CountByGroup(groupId)
		if err != nil {
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
		members, err := g.repos.GroupMember.FindMembersWithUserInfo(groupId)
		if err != nil {
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
		memberList := make([]respond.GroupMemberRespond, 0, len(members))
		for _, m := range members {
			memberList = append(memberList, respond.GroupMemberRespond{
				UserId:   m.UserId,
				Nickname: m.Nickname,
				Avatar:   m.Avatar,
				Role:     m.Role,
			})
		}
		detail = &respond.GroupDetailRespond{
			GroupInfoRespond: groupInfoRespond(group, memberCnt),
			Members:          memberList,
			JoinRequests:     []respond.JoinRequestRespond{},
		}

		fresh := *detail
		g.cache.SubmitTask(func() {
			rspBytes, err := json.Marshal(fresh)
			if err != nil {
				zap.L().Error("Marshal group detail error", zap.Error(err))
				return
			}
			if err := g.cache.Set(context.Background(), cacheKey, string(rspBytes), time.Minute*30); err != nil {
				zap.L().Error("Set cache error", zap.Error(err))
			}
		})
	}

	// 3. admin 以上附带待审批申请（实时数据，不走缓存）
	viewerRole, err := g.memberRole(groupId, viewerId)
	if err == nil && role.Rank(viewerRole) >= role.Rank(role.Admin) {
		requests, err := g.repos.JoinRequest.FindByGroup(groupId)
		if err != nil {
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
		requestList := make([]respond.JoinRequestRespond, 0, len(requests))
		for _, r := range requests {
			requestList = append(requestList, respond.JoinRequestRespond{
				UserId:    r.UserUuid,
				Message:   r.Message,
				CreatedAt: r.CreatedAt.Format(time.RFC3339),
			})
		}
		detail.JoinRequests = requestList
	}

	return detail, nil
}

// UpdateGroup 按白名单字段更新群组（admin 以上）
// 名称与群主不可修改，白名单由 UpdateGroupRequest 的指针字段限定
func (g *groupService) UpdateGroup(actorId, groupId string, req request.UpdateGroupRequest) error {
	actorRole, err := g.memberRole(groupId, actorId)
	if err != nil {
		return err
	}
	if !role.Can(actorRole, "", role.ActionUpdateGroup) {
		return denied(role.ActionUpdateGroup, "admin 及以上角色")
	}

	updates := make(map[string]interface{})
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Dp != nil {
		updates["dp"] = *req.Dp
	}
	if req.Privacy != nil {
		updates["privacy"] = *req.Privacy
	}
	if req.Tags != nil {
		updates["tags"] = model.JoinTags(*req.Tags)
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.PinnedPost != nil {
		updates["pinned_post"] = *req.PinnedPost
	}
	if len(updates) == 0 {
		return errorx.New(errorx.CodeInvalidParam, "没有需要更新的字段")
	}

	return g.withGroupCAS(groupId, func(txRepos *repository.Repositories, group *model.GroupInfo) error {
		if err := txRepos.Group.UpdateFields(group.Uuid, updates); err != nil {
			return err
		}
		return txRepos.GroupAudit.Append(&model.GroupAudit{
			GroupUuid: group.Uuid,
			Action:    auditUpdateGroup,
			ActorUuid: actorId,
		})
	})
}

// DeleteGroup 删除群组（admin 以上）
// 级联删除成员与待审批申请，审计日志保留
func (g *groupService) DeleteGroup(actorId, groupId string) error {
	actorRole, err := g.memberRole(groupId, actorId)
	if err != nil {
		return err
	}
	if !role.Can(actorRole, "", role.ActionDeleteGroup) {
		return denied(role.ActionDeleteGroup, "admin 及以上角色")
	}

	err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.GroupMember.DeleteByGroupUuid(groupId); err != nil {
			return err
		}
		if err := txRepos.JoinRequest.DeleteByGroupUuid(groupId); err != nil {
			return err
		}
		if err := txRepos.GroupAudit.Append(&model.GroupAudit{
			GroupUuid: groupId,
			Action:    auditDeleteGroup,
			ActorUuid: actorId,
		}); err != nil {
			return err
		}
		return txRepos.Group.HardDelete(groupId)
	})
	if err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	g.invalidateGroupCache(groupId)
	return nil
}

// LeaveGroup 退出群组
// owner 不能退出，只能删除群组
func (g *groupService) LeaveGroup(userId, groupId string) error {
	userRole, err := g.memberRole(groupId, userId)
	if err != nil {
		return err
	}
	if userRole == role.Owner {
		return errorx.New(errorx.CodeForbidden, "群主不能退出群组")
	}

	return g.withGroupCAS(groupId, func(txRepos *repository.Repositories, group *model.GroupInfo) error {
		if err := txRepos.GroupMember.Delete(group.Uuid, userId); err != nil {
			return err
		}
		return txRepos.GroupAudit.Append(&model.GroupAudit{
			GroupUuid: group.Uuid,
			Action:    auditLeaveGroup,
			ActorUuid: userId,
		})
	})
}

// addMember 在 CAS 事务内加成员，含容量检查与审计
func addMember(txRepos *repository.Repositories, group *model.GroupInfo, userId, auditAction, auditActor string) error {
	if group.Capacity > 0 {
		cnt, err := txRepos.GroupMember.CountByGroup(group.Uuid)
		if err != nil {
			return err
		}
		if cnt >= int64(group.Capacity) {
			return errorx.New(errorx.CodeConflict, "群组人数已满")
		}
	}
	member := model.GroupMember{
		GroupUuid: group.Uuid,
		UserUuid:  userId,
		Role:      string(role.Member),
	}
	if err := txRepos.GroupMember.Create(&member); err != nil {
		return err
	}
	return txRepos.GroupAudit.Append(&model.GroupAudit{
		GroupUuid:  group.Uuid,
		Action:     auditAction,
		ActorUuid:  auditActor,
		TargetUuid: userId,
	})
}

// RequestJoin 申请入群
// 公开群直接入群返回 joined=true；私密群创建待审批申请返回 joined=false
func (g *groupService) RequestJoin(userId, groupId string, message string) (bool, error) {
	group, err := g.findGroup(groupId)
	if err != nil {
		return false, err
	}
	if _, err := g.repos.GroupMember.FindMember(groupId, userId); err == nil {
		return false, errorx.New(errorx.CodeConflict, "已经是群成员")
	} else if !errorx.IsNotFound(err) {
		zap.L().Error(err.Error())
		return false, errorx.ErrServerBusy
	}

	// 公开群直接入群
	if group.Privacy == model.PrivacyPublic {
		err = g.withGroupCAS(groupId, func(txRepos *repository.Repositories, group *model.GroupInfo) error {
			return addMember(txRepos, group, userId, auditJoinGroup, userId)
		})
		if err != nil {
			if codeErr := new(errorx.CodeError); errors.As(err, &codeErr) {
				return false, err
			}
			zap.L().Error(err.Error())
			return false, errorx.ErrServerBusy
		}
		return true, nil
	}

	// 非公开群进入审批队列，重复申请由唯一键挡下
	err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.JoinRequest.Create(&model.JoinRequest{
			GroupUuid: groupId,
			UserUuid:  userId,
			Message:   message,
		}); err != nil {
			return err
		}
		return txRepos.GroupAudit.Append(&model.GroupAudit{
			GroupUuid: groupId,
			Action:    auditRequestJoin,
			ActorUuid: userId,
		})
	})
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeConflict {
			return false, errorx.New(errorx.CodeConflict, "已有待审批的申请")
		}
		zap.L().Error(err.Error())
		return false, errorx.ErrServerBusy
	}
	return false, nil
}

// ApproveJoin 审批通过入群申请（admin 以上）
func (g *groupService) ApproveJoin(actorId, groupId, targetId string) error {
	actorRole, err := g.memberRole(groupId, actorId)
	if err != nil {
		return err
	}
	if !role.Can(actorRole, "", role.ActionApproveJoin) {
		return denied(role.ActionApproveJoin, "admin 及以上角色")
	}
	if _, err := g.repos.JoinRequest.Find(groupId, targetId); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "申请不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	return g.withGroupCAS(groupId, func(txRepos *repository.Repositories, group *model.GroupInfo) error {
		if err := addMember(txRepos, group, targetId, auditApproveJoin, actorId); err != nil {
			return err
		}
		return txRepos.JoinRequest.Delete(group.Uuid, targetId)
	})
}

// RejectJoin 拒绝入群申请（admin 以上），申请直接删除
func (g *groupService) RejectJoin(actorId, groupId, targetId string) error {
	actorRole, err := g.memberRole(groupId, actorId)
	if err != nil {
		return err
	}
	if !role.Can(actorRole, "", role.ActionApproveJoin) {
		return denied(role.ActionApproveJoin, "admin 及以上角色")
	}
	if _, err := g.repos.JoinRequest.Find(groupId, targetId); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "申请不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.JoinRequest.Delete(groupId, targetId); err != nil {
			return err
		}
		return txRepos.GroupAudit.Append(&model.GroupAudit{
			GroupUuid:  groupId,
			Action:     auditRejectJoin,
			ActorUuid:  actorId,
			TargetUuid: targetId,
		})
	})
	if err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}

// KickMember 移除成员，操作者角色必须严格高于目标
func (g *groupService) KickMember(actorId, groupId, targetId string) error {
	actorRole, err := g.memberRole(groupId, actorId)
	if err != nil {
		return err
	}
	target, err := g.repos.GroupMember.FindMember(groupId, targetId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "目标不是群成员")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if !role.Can(actorRole, role.Role(target.Role), role.ActionKickMember) {
		return denied(role.ActionKickMember, "严格高于目标的角色")
	}

	return g.withGroupCAS(groupId, func(txRepos *repository.Repositories, group *model.GroupInfo) error {
		if err := txRepos.GroupMember.Delete(group.Uuid, targetId); err != nil {
			return err
		}
		return txRepos.GroupAudit.Append(&model.GroupAudit{
			GroupUuid:  group.Uuid,
			Action:     auditKickMember,
			ActorUuid:  actorId,
			TargetUuid: targetId,
		})
	})
}

// PromoteMember 提升成员为 admin，操作者角色必须严格高于目标
func (g *groupService) PromoteMember(actorId, groupId, targetId string) error {
	actorRole, err := g.memberRole(groupId, actorId)
	if err != nil {
		return err
	}
	target, err := g.repos.GroupMember.FindMember(groupId, targetId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "目标不是群成员")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if !role.Can(actorRole, role.Role(target.Role), role.ActionPromoteMember) {
		return denied(role.ActionPromoteMember, "严格高于目标的角色")
	}

	return g.withGroupCAS(groupId, func(txRepos *repository.Repositories, group *model.GroupInfo) error {
		if err := txRepos.GroupMember.UpdateRole(group.Uuid, targetId, string(role.Admin)); err != nil {
			return err
		}
		return txRepos.GroupAudit.Append(&model.GroupAudit{
			GroupUuid:  group.Uuid,
			Action:     auditPromoteMember,
			ActorUuid:  actorId,
			TargetUuid: targetId,
			Detail:     "role=" + string(role.Admin),
		})
	})
}

// GenerateInviteCode 生成群组邀请码（admin 以上）
// 邀请码多次可用，7 天有效，不支持撤销
func (g *groupService) GenerateInviteCode(actorId, groupId string) (*respond.InviteCodeRespond, error) {
	actorRole, err := g.memberRole(groupId, actorId)
	if err != nil {
		return nil, err
	}
	if !role.Can(actorRole, "", role.ActionGenerateInvite) {
		return nil, denied(role.ActionGenerateInvite, "admin 及以上角色")
	}
	if _, err := g.findGroup(groupId); err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(time.Hour * constants.INVITE_CODE_EXPIRY_HOURS)
	invite := &model.InviteCode{
		Code:      random.GetInviteCode(),
		GroupUuid: groupId,
		CreatedBy: actorId,
		ExpiresAt: expiresAt,
	}

	err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.InviteCode.Create(invite); err != nil {
			return err
		}
		return txRepos.GroupAudit.Append(&model.GroupAudit{
			GroupUuid: groupId,
			Action:    auditGenerateInvite,
			ActorUuid: actorId,
			Detail:    "code=" + invite.Code,
		})
	})
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	return &respond.InviteCodeRespond{
		Code:      invite.Code,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}, nil
}

// JoinByInvite 凭邀请码直接入群，绕过审批
func (g *groupService) JoinByInvite(userId, code string) (string, error) {
	invite, err := g.repos.InviteCode.FindByCode(code)
	if err != nil {
		if errorx.IsNotFound(err) {
			return "", errorx.New(errorx.CodeNotFound, "邀请码不存在")
		}
		zap.L().Error(err.Error())
		return "", errorx.ErrServerBusy
	}
	if invite.Expired(time.Now()) {
		return "", errorx.New(errorx.CodeInvalidParam, "邀请码已过期")
	}

	groupId := invite.GroupUuid
	if _, err := g.findGroup(groupId); err != nil {
		return "", err
	}
	if _, err := g.repos.GroupMember.FindMember(groupId, userId); err == nil {
		return "", errorx.New(errorx.CodeConflict, "已经是群成员")
	} else if !errorx.IsNotFound(err) {
		zap.L().Error(err.Error())
		return "", errorx.ErrServerBusy
	}

	err = g.withGroupCAS(groupId, func(txRepos *repository.Repositories, group *model.GroupInfo) error {
		if err := addMember(txRepos, group, userId, auditJoinByInvite, userId); err != nil {
			return err
		}
		// 邀请入群时若有同人待审批申请，一并清掉
		return txRepos.JoinRequest.Delete(group.Uuid, userId)
	})
	if err != nil {
		if codeErr := new(errorx.CodeError); errors.As(err, &codeErr) {
			return "", err
		}
		zap.L().Error(err.Error())
		return "", errorx.ErrServerBusy
	}
	return groupId, nil
}

// GetAuditLog 查询群组审计日志（admin 以上），按时间倒序，最多 100 条
func (g *groupService) GetAuditLog(actorId, groupId string) ([]respond.AuditEntryRespond, error) {
	actorRole, err := g.memberRole(groupId, actorId)
	if err != nil {
		return nil, err
	}
	if !role.Can(actorRole, "", role.ActionViewAudit) {
		return nil, denied(role.ActionViewAudit, "admin 及以上角色")
	}

	entries, err := g.repos.GroupAudit.FindByGroup(groupId, 100)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	rspList := make([]respond.AuditEntryRespond, 0, len(entries))
	for _, e := range entries {
		rspList = append(rspList, respond.AuditEntryRespond{
			Action:     e.Action,
			ActorUuid:  e.ActorUuid,
			TargetUuid: e.TargetUuid,
			Detail:     e.Detail,
			CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		})
	}
	return rspList, nil
}
