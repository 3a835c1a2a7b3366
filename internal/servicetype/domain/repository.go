package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Insert(ctx context.Context, serviceType *ServiceType) error
	FindByID(ctx context.Context, id snowflake.ID) (*ServiceType, error)
	List(ctx context.Context) ([]ServiceType, error)
}
