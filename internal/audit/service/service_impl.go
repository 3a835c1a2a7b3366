package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/tipaniya/hisaab/internal/audit/domain"
)

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(log *zap.Logger, genID *snowflake.Node, repo domain.Repository) domain.Service {
	return &Service{
		log:   log.Named("audit.service"),
		genID: genID,
		repo:  repo,
	}
}

func (s *Service) Record(ctx context.Context, actorID *snowflake.ID, action, targetType string, targetID *string, details map[string]any) {
	if details == nil {
		details = map[string]any{}
	}

	entry := &domain.AuditLog{
		ID:         s.genID.Generate(),
		ActorID:    actorID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    datatypes.JSONMap(details),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		s.log.Warn("audit write failed",
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
