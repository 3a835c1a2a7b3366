package domain

import (
	"time"
)

// BuildRequest identifies the farmer to invoice and the user asking
// for it. Both fields are required; the requester's role decides which
// entries appear.
type BuildRequest struct {
	FarmerID         string
	RequestingUserID string
}

// Line is one service entry placed on the invoice.
type Line struct {
	Seq         int
	Date        time.Time
	ServiceType string
	Remark      string
	Hours       float64
	Cost        float64
}

// PaymentLine is one payment placed on the invoice.
type PaymentLine struct {
	Date   time.Time
	Amount float64
	Remark string
}

// Invoice is the aggregated, unrendered document content. Totals are
// accumulated at full precision; rounding happens at render time.
type Invoice struct {
	FarmerName    string
	FarmerContact string
	GeneratedAt   time.Time
	Lines         []Line
	Payments      []PaymentLine
	TotalCost     float64
	TotalPaid     float64
}

// Balance is total charges minus total payments. Negative means the
// farmer has overpaid.
func (i Invoice) Balance() float64 {
	return i.TotalCost - i.TotalPaid
}

// Document is the rendered result handed back to the transport layer.
type Document struct {
	Bytes       []byte
	ContentType string
	Filename    string
}
