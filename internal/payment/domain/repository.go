package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Insert(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, id snowflake.ID) (*PaymentDetail, error)
	// ListByFarmer returns every payment recorded against a farmer,
	// regardless of who recorded it, most recent first.
	ListByFarmer(ctx context.Context, farmerID snowflake.ID) ([]PaymentDetail, error)
	// ListByAdmin returns payments recorded by the admin or any driver
	// reporting to them, most recent first.
	ListByAdmin(ctx context.Context, adminID snowflake.ID) ([]PaymentDetail, error)
}
