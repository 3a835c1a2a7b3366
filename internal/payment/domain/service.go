package domain

import (
	"context"
	"errors"
	"time"
)

type CreatePaymentRequest struct {
	FarmerID string
	UserID   string
	Amount   float64
	Remark   string
	// PaymentDate defaults to now when nil.
	PaymentDate *time.Time
}

type Service interface {
	Create(ctx context.Context, req CreatePaymentRequest) (Payment, error)
	GetByID(ctx context.Context, id string) (PaymentDetail, error)
	ListByFarmer(ctx context.Context, farmerID string) ([]PaymentDetail, error)
	ListByAdmin(ctx context.Context, adminID string) ([]PaymentDetail, error)
}

var (
	ErrInvalidFarmerID = errors.New("invalid_farmer_id")
	ErrInvalidUserID   = errors.New("invalid_user_id")
	ErrInvalidAmount   = errors.New("invalid_amount")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("payment_not_found")
)
