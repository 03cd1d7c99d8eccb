package bootstrap

import "context"

// AuditLog is one operator-visible lifecycle event: startup, shutdown,
// migrations. Business mutations are audited through handover rows and the
// outbox instead.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
