package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Insert(ctx context.Context, log *AuditLog) error
}

// Service records audit events. Implementations are best-effort: a
// failed write must never fail the caller's request.
type Service interface {
	Record(ctx context.Context, actorID *snowflake.ID, action, targetType string, targetID *string, details map[string]any)
}
