package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tipaniya/hisaab/internal/servicetype/domain"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:   p.Log.Named("servicetype.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateServiceTypeRequest) (domain.ServiceType, error) {
	label := strings.TrimSpace(req.Type)
	if label == "" {
		return domain.ServiceType{}, domain.ErrInvalidType
	}
	if req.Rate <= 0 {
		return domain.ServiceType{}, domain.ErrInvalidRate
	}

	serviceType := domain.ServiceType{
		ID:        s.genID.Generate(),
		Type:      label,
		Rate:      req.Rate,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, &serviceType); err != nil {
		return domain.ServiceType{}, err
	}

	return serviceType, nil
}

func (s *Service) List(ctx context.Context) ([]domain.ServiceType, error) {
	return s.repo.List(ctx)
}
