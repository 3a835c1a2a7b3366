package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tipaniya/hisaab/internal/payment/domain"
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
		log:   p.Log.Named("payment.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreatePaymentRequest) (domain.Payment, error) {
	farmerID, err := snowflake.ParseString(strings.TrimSpace(req.FarmerID))
	if err != nil {
		return domain.Payment{}, domain.ErrInvalidFarmerID
	}
	userID, err := snowflake.ParseString(strings.TrimSpace(req.UserID))
	if err != nil {
		return domain.Payment{}, domain.ErrInvalidUserID
	}
	if req.Amount <= 0 {
		return domain.Payment{}, domain.ErrInvalidAmount
	}

	paymentDate := time.Now().UTC()
	if req.PaymentDate != nil {
		paymentDate = req.PaymentDate.UTC()
	}

	payment := domain.Payment{
		ID:          s.genID.Generate(),
		FarmerID:    farmerID,
		UserID:      userID,
		Amount:      req.Amount,
		PaymentDate: paymentDate,
		Remark:      strings.TrimSpace(req.Remark),
	}

	if err := s.repo.Insert(ctx, &payment); err != nil {
		return domain.Payment{}, err
	}

	return payment, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.PaymentDetail, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.PaymentDetail{}, domain.ErrInvalidID
	}
	detail, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		return domain.PaymentDetail{}, err
	}
	return *detail, nil
}

func (s *Service) ListByFarmer(ctx context.Context, farmerID string) ([]domain.PaymentDetail, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(farmerID))
	if err != nil {
		return nil, domain.ErrInvalidFarmerID
	}
	return s.repo.ListByFarmer(ctx, parsed)
}

func (s *Service) ListByAdmin(ctx context.Context, adminID string) ([]domain.PaymentDetail, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(adminID))
	if err != nil {
		return nil, domain.ErrInvalidUserID
	}
	return s.repo.ListByAdmin(ctx, parsed)
}
