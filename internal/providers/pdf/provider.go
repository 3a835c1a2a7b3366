package pdf

import (
	"context"
	"io"
)

// ReceiptData carries everything printed on a payment receipt.
type ReceiptData struct {
	OrgName       string
	ReceiptNumber string
	FarmerName    string
	RecordedBy    string
	Amount        string
	DatePaid      string
	Remark        string
	FooterLine    string
}

// Provider renders supporting documents (receipts). Invoices have
// their own coordinate-addressed renderer in internal/invoice/render.
type Provider interface {
	GenerateReceipt(ctx context.Context, data ReceiptData) (io.Reader, error)
}
