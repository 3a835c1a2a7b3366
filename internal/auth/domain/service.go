package domain

import (
	"context"
	"time"
)

type LoginRequest struct {
	Username  string
	Password  string
	UserAgent string
	IPAddress string
}

type LoginResult struct {
	User      UserView
	RawToken  string
	ExpiresAt time.Time
}

type CreateUserRequest struct {
	Username string
	Password string
	FullName string
	Role     Role
	// AdminID names the admin a driver reports to. Required for drivers,
	// rejected for admins.
	AdminID string
}

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, rawToken string) error
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	// Authenticate resolves a raw session token to its user.
	Authenticate(ctx context.Context, rawToken string) (*User, error)
}
