package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Entry is one recorded instance of service work performed for a
// farmer by a user.
type Entry struct {
	ID             snowflake.ID `gorm:"primaryKey" json:"id"`
	FarmerID       snowflake.ID `gorm:"column:farmer_id;not null;index" json:"farmer_id"`
	ServiceID      snowflake.ID `gorm:"column:service_id;not null" json:"service_id"`
	UserID         snowflake.ID `gorm:"column:user_id;not null;index" json:"user_id"`
	Hours          float64      `gorm:"not null" json:"hours"`
	AmountReceived float64      `gorm:"column:amount_received;not null;default:0" json:"amount_received"`
	Remark         string       `gorm:"type:text" json:"remark"`
	EntryDate      time.Time    `gorm:"column:entry_date;not null;index" json:"entry_date"`
}

// TableName sets the database table name.
func (Entry) TableName() string { return "hisaab_entries" }

// EntryDetail is an entry joined with its farmer and service rows.
// Cost is derived from the live service rate, never persisted.
type EntryDetail struct {
	ID             snowflake.ID `json:"id"`
	FarmerID       snowflake.ID `json:"farmer_id"`
	ServiceID      snowflake.ID `json:"service_id"`
	UserID         snowflake.ID `json:"user_id"`
	FarmerName     string       `json:"farmer_name"`
	ServiceType    string       `json:"service_type"`
	Hours          float64      `json:"hours"`
	Rate           float64      `json:"rate"`
	AmountReceived float64      `json:"amount_received"`
	Remark         string       `json:"remark"`
	EntryDate      time.Time    `json:"entry_date"`
}

// Cost is hours times the current service rate.
func (e EntryDetail) Cost() float64 {
	return e.Hours * e.Rate
}

// Visibility selects which users' entries a requester may see.
type Visibility struct {
	RequesterID snowflake.ID
	// IncludeReports also matches entries created by drivers whose
	// admin_id points at RequesterID. Set for admin requesters only.
	IncludeReports bool
}
