package model

import "time"

// AuditAction enumerates the console actions that are recorded.
type AuditAction string

const (
	AuditActionLogin        AuditAction = "login"
	AuditActionLoginDenied  AuditAction = "login_denied"
	AuditActionLogout       AuditAction = "logout"
	AuditActionCreate       AuditAction = "create"
	AuditActionUpdate       AuditAction = "update"
	AuditActionDeleteArmed  AuditAction = "delete_armed"
	AuditActionDeleteUndone AuditAction = "delete_undone"
	AuditActionDelete       AuditAction = "delete"
	AuditActionStatusChange AuditAction = "status_change"
)

// AuditEntry is one recorded console action. Failures to persist an entry
// never fail the action that produced it.
type AuditEntry struct {
	ID         string      `json:"id"`
	Actor      string      `json:"actor"`
	Action     AuditAction `json:"action"`
	EntityType string      `json:"entity_type"`
	EntityID   string      `json:"entity_id"`
	Outcome    string      `json:"outcome"`
	Detail     string      `json:"detail,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}
