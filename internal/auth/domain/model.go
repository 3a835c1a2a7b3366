// Package domain contains core types for the auth service.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Role is the access level of a user account. The hierarchy is exactly
// one level deep: drivers report to a single admin, admins report to
// nobody.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleDriver Role = "driver"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleDriver
}

// User represents a system user account. AdminID is set for drivers
// and NULL for admins.
type User struct {
	ID           snowflake.ID  `gorm:"primaryKey" json:"id"`
	Username     string        `gorm:"type:text;not null;uniqueIndex" json:"username"`
	PasswordHash string        `gorm:"column:password_hash;type:text;not null" json:"-"`
	FullName     string        `gorm:"column:full_name;type:text;not null" json:"full_name"`
	Role         Role          `gorm:"type:text;not null" json:"role"`
	AdminID      *snowflake.ID `gorm:"column:admin_id;index" json:"admin_id,omitempty"`
	CreatedAt    time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }

// ReportsTo reports whether the user is a driver assigned to the given admin.
func (u User) ReportsTo(adminID snowflake.ID) bool {
	return u.Role == RoleDriver && u.AdminID != nil && *u.AdminID == adminID
}

// Session represents a persisted login session.
type Session struct {
	ID               snowflake.ID `gorm:"primaryKey"`
	UserID           snowflake.ID `gorm:"column:user_id;not null;index"`
	SessionTokenHash string       `gorm:"column:session_token_hash;type:text;not null;uniqueIndex"`
	UserAgent        string       `gorm:"column:user_agent;type:text"`
	IPAddress        string       `gorm:"column:ip_address;type:text"`
	ExpiresAt        time.Time    `gorm:"column:expires_at;not null;index"`
	RevokedAt        *time.Time   `gorm:"column:revoked_at"`
	CreatedAt        time.Time    `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	LastSeenAt       time.Time    `gorm:"column:last_seen_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Session) TableName() string { return "sessions" }

// UserView is returned to clients without exposing credential material.
type UserView struct {
	ID       snowflake.ID `json:"id"`
	Username string       `json:"username"`
	FullName string       `json:"full_name"`
	Role     Role         `json:"role"`
}

func (u User) View() UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Role:     u.Role,
	}
}
