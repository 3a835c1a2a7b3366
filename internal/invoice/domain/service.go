package domain

import (
	"context"
	"errors"
	"strings"
)

type Service interface {
	// Build aggregates the visible entries and payments for a farmer and
	// renders them into a PDF document. The document is fully generated
	// in memory; no bytes reach the caller on error.
	Build(ctx context.Context, req BuildRequest) (*Document, error)
}

// ErrNoEntries is returned when the farmer exists but the requester can
// see no entries for them, so no invoice can be produced.
var ErrNoEntries = errors.New("no_entries")

// FieldError names one invalid request field.
type FieldError struct {
	Field string
	Code  string
}

// InvalidRequestError aggregates every request violation found before
// any store access occurs.
type InvalidRequestError struct {
	Fields []FieldError
}

func (e *InvalidRequestError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return "invalid request: " + strings.Join(names, ", ")
}
