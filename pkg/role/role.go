package role

// Role 群内角色，封闭枚举
type Role string

const (
	Owner     Role = "owner"
	Admin     Role = "admin"
	Moderator Role = "moderator"
	Member    Role = "member"
)

// Action 需要鉴权的群管理动作
type Action string

const (
	ActionApproveJoin    Action = "approve_join"
	ActionKickMember     Action = "kick_member"
	ActionPromoteMember  Action = "promote_member"
	ActionGenerateInvite Action = "generate_invite"
	ActionUpdateGroup    Action = "update_group"
	ActionDeleteGroup    Action = "delete_group"
	ActionViewAudit      Action = "view_audit"
)

// Rank 角色权重，未知角色为 0
func Rank(r Role) int {
	switch r {
	case Owner:
		return 4
	case Admin:
		return 3
	case Moderator:
		return 2
	case Member:
		return 1
	default:
		return 0
	}
}

// Can 判断 actor 角色是否有权对 target 角色执行 action
// 踢人/提升要求 actor 严格高于 target，
// 其余管理动作要求 admin 及以上
func Can(actor, target Role, action Action) bool {
	switch action {
	case ActionKickMember, ActionPromoteMember:
		return Rank(actor) > Rank(target)
	case ActionApproveJoin, ActionGenerateInvite, ActionUpdateGroup,
		ActionDeleteGroup, ActionViewAudit:
		return Rank(actor) >= Rank(Admin)
	default:
		return false
	}
}
