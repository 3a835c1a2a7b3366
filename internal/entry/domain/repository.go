package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Insert(ctx context.Context, entry *Entry) error
	// ListByUser returns all entries created by a user, most recent first.
	ListByUser(ctx context.Context, userID snowflake.ID) ([]EntryDetail, error)
	// ListByFarmerAndUser returns a user's entries against one farmer,
	// most recent first.
	ListByFarmerAndUser(ctx context.Context, farmerID, userID snowflake.ID) ([]EntryDetail, error)
	// ListVisible returns the entries for a farmer that the requester may
	// see under the role visibility rule, most recent first.
	ListVisible(ctx context.Context, farmerID snowflake.ID, vis Visibility) ([]EntryDetail, error)
}
