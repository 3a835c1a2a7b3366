package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Insert(ctx context.Context, farmer *Farmer) error
	FindByID(ctx context.Context, id snowflake.ID) (*Farmer, error)
	List(ctx context.Context) ([]Farmer, error)
}
