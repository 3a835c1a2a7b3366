package domain

import (
	"context"
	"errors"
	"time"
)

type CreateEntryRequest struct {
	FarmerID       string
	ServiceID      string
	UserID         string
	Hours          float64
	AmountReceived float64
	Remark         string
	// EntryDate defaults to now when nil.
	EntryDate *time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateEntryRequest) (Entry, error)
	ListByUser(ctx context.Context, userID string) ([]EntryDetail, error)
	ListByFarmerAndUser(ctx context.Context, farmerID, userID string) ([]EntryDetail, error)
}

var (
	ErrInvalidFarmerID  = errors.New("invalid_farmer_id")
	ErrInvalidServiceID = errors.New("invalid_service_id")
	ErrInvalidUserID    = errors.New("invalid_user_id")
	ErrInvalidHours     = errors.New("invalid_hours")
)
