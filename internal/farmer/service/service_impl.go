package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tipaniya/hisaab/internal/farmer/domain"
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
		log:   p.Log.Named("farmer.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateFarmerRequest) (domain.Farmer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Farmer{}, domain.ErrInvalidName
	}

	farmer := domain.Farmer{
		ID:        s.genID.Generate(),
		Name:      name,
		Contact:   strings.TrimSpace(req.Contact),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, &farmer); err != nil {
		return domain.Farmer{}, err
	}

	return farmer, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Farmer, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Farmer, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.Farmer{}, domain.ErrInvalidID
	}

	farmer, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		return domain.Farmer{}, err
	}
	return *farmer, nil
}
