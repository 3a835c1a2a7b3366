package domain

import (
	"context"
	"errors"
)

type CreateFarmerRequest struct {
	Name    string
	Contact string
}

type Service interface {
	Create(ctx context.Context, req CreateFarmerRequest) (Farmer, error)
	List(ctx context.Context) ([]Farmer, error)
	GetByID(ctx context.Context, id string) (Farmer, error)
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("farmer_not_found")
)
