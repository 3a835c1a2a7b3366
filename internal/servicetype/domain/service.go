package domain

import (
	"context"
	"errors"
)

type CreateServiceTypeRequest struct {
	Type string
	Rate float64
}

type Service interface {
	Create(ctx context.Context, req CreateServiceTypeRequest) (ServiceType, error)
	List(ctx context.Context) ([]ServiceType, error)
}

var (
	ErrInvalidType = errors.New("invalid_type")
	ErrInvalidRate = errors.New("invalid_rate")
	ErrNotFound    = errors.New("service_not_found")
)
