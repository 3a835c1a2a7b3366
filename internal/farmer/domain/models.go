package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Farmer is a customer of the service business. Entries and payments
// reference it.
type Farmer struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Contact   string       `gorm:"type:text" json:"contact"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Farmer) TableName() string { return "farmers" }
