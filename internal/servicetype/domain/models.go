package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// ServiceType is a billable kind of work (ploughing, harrowing, ...)
// with its hourly rate. The rate is joined live when computing entry
// cost; editing it changes the computed cost of past entries.
type ServiceType struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Type      string       `gorm:"type:text;not null" json:"type"`
	Rate      float64      `gorm:"not null" json:"rate"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (ServiceType) TableName() string { return "services" }
