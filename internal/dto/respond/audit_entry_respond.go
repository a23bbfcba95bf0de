package respond

// AuditEntryRespond 审计日志条目
// 使用位置:
//   - internal/service/group/service.go: GetAuditLog
type AuditEntryRespond struct {
	Action     string `json:"action"`
	ActorUuid  string `json:"actor_uuid"`
	TargetUuid string `json:"target_uuid,omitempty"`
	Detail     string `json:"detail,omitempty"`
	CreatedAt  string `json:"created_at"`
}
