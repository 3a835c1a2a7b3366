package pdf

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReceipt(t *testing.T) {
	provider := New()

	reader, err := provider.GenerateReceipt(context.Background(), ReceiptData{
		OrgName:       "Tipaniya Farm Services",
		ReceiptNumber: "1234567890",
		FarmerName:    "Ramesh Kumar",
		RecordedBy:    "Driver One",
		Amount:        "Rs 800.00",
		DatePaid:      "15/06/2025",
		Remark:        "cash",
		FooterLine:    "Thank you",
	})
	require.NoError(t, err)

	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.NotEmpty(t, body)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"), "output must be a PDF document")
}

func TestGenerateReceiptEmptyRemark(t *testing.T) {
	provider := New()

	reader, err := provider.GenerateReceipt(context.Background(), ReceiptData{
		OrgName:       "Tipaniya Farm Services",
		ReceiptNumber: "1",
		FarmerName:    "Ramesh Kumar",
		RecordedBy:    "Owner",
		Amount:        "Rs 300.00",
		DatePaid:      "20/06/2025",
		FooterLine:    "Thank you",
	})
	require.NoError(t, err)

	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}
