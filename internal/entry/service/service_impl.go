package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tipaniya/hisaab/internal/entry/domain"
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
		log:   p.Log.Named("entry.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateEntryRequest) (domain.Entry, error) {
	farmerID, err := snowflake.ParseString(strings.TrimSpace(req.FarmerID))
	if err != nil {
		return domain.Entry{}, domain.ErrInvalidFarmerID
	}
	serviceID, err := snowflake.ParseString(strings.TrimSpace(req.ServiceID))
	if err != nil {
		return domain.Entry{}, domain.ErrInvalidServiceID
	}
	userID, err := snowflake.ParseString(strings.TrimSpace(req.UserID))
	if err != nil {
		return domain.Entry{}, domain.ErrInvalidUserID
	}
	if req.Hours < 0 {
		return domain.Entry{}, domain.ErrInvalidHours
	}

	entryDate := time.Now().UTC()
	if req.EntryDate != nil {
		entryDate = req.EntryDate.UTC()
	}

	entry := domain.Entry{
		ID:             s.genID.Generate(),
		FarmerID:       farmerID,
		ServiceID:      serviceID,
		UserID:         userID,
		Hours:          req.Hours,
		AmountReceived: req.AmountReceived,
		Remark:         strings.TrimSpace(req.Remark),
		EntryDate:      entryDate,
	}

	if err := s.repo.Insert(ctx, &entry); err != nil {
		return domain.Entry{}, err
	}

	return entry, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.EntryDetail, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(userID))
	if err != nil {
		return nil, domain.ErrInvalidUserID
	}
	return s.repo.ListByUser(ctx, parsed)
}

func (s *Service) ListByFarmerAndUser(ctx context.Context, farmerID, userID string) ([]domain.EntryDetail, error) {
	parsedFarmer, err := snowflake.ParseString(strings.TrimSpace(farmerID))
	if err != nil {
		return nil, domain.ErrInvalidFarmerID
	}
	parsedUser, err := snowflake.ParseString(strings.TrimSpace(userID))
	if err != nil {
		return nil, domain.ErrInvalidUserID
	}
	return s.repo.ListByFarmerAndUser(ctx, parsedFarmer, parsedUser)
}
