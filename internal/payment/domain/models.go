package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Payment is one recorded money transfer from a farmer against their
// outstanding balance.
type Payment struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	FarmerID    snowflake.ID `gorm:"column:farmer_id;not null;index" json:"farmer_id"`
	UserID      snowflake.ID `gorm:"column:user_id;not null;index" json:"user_id"`
	Amount      float64      `gorm:"not null" json:"amount"`
	PaymentDate time.Time    `gorm:"column:payment_date;not null;index" json:"payment_date"`
	Remark      string       `gorm:"type:text" json:"remark"`
}

// TableName sets the database table name.
func (Payment) TableName() string { return "payments" }

// PaymentDetail is a payment joined with farmer and recorder names.
type PaymentDetail struct {
	ID          snowflake.ID `json:"id"`
	FarmerID    snowflake.ID `json:"farmer_id"`
	UserID      snowflake.ID `json:"user_id"`
	Amount      float64      `json:"amount"`
	PaymentDate time.Time    `json:"payment_date"`
	Remark      string       `json:"remark"`
	FarmerName  string       `json:"farmer_name"`
	UserName    string       `json:"user_name"`
}
