package format

import (
	"strings"
	"testing"
	"time"
)

func TestFormatHours(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{0, "0:00"},
		{2.5, "2:30"},
		{1.25, "1:15"},
		{3.75, "3:45"},
		{10, "10:00"},
		{0.1, "0:06"},
		// Fractions rounding up to a full hour stay in the minutes
		// column instead of carrying.
		{1.999, "1:60"},
	}

	for _, tc := range cases {
		if got := FormatHours(tc.hours); got != tc.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tc.hours, got, tc.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0, "0.00"},
		{1450, "1450.00"},
		{650.5, "650.50"},
		{0.005, "0.01"},
		{-120.456, "-120.46"},
	}

	for _, tc := range cases {
		if got := FormatAmount(tc.v); got != tc.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestFormatDateDayFirst(t *testing.T) {
	d := time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC)
	if got := FormatDate(d); got != "07/03/2025" {
		t.Fatalf("FormatDate = %q, want 07/03/2025", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 25); got != "short" {
		t.Fatalf("Truncate(short) = %q", got)
	}

	long := strings.Repeat("x", 40)
	if got := Truncate(long, 25); len([]rune(got)) != 25 {
		t.Fatalf("Truncate length = %d, want 25", len([]rune(got)))
	}
	if got := Truncate(long, 25); strings.HasSuffix(got, "...") {
		t.Fatalf("Truncate must not append an ellipsis, got %q", got)
	}

	// Rune-safe on multibyte text.
	if got := Truncate("खेत की जुताई और बुवाई का काम पूरा", 25); len([]rune(got)) != 25 {
		t.Fatalf("Truncate rune length = %d, want 25", len([]rune(got)))
	}

	if got := Truncate("anything", 0); got != "anything" {
		t.Fatalf("Truncate with zero max = %q", got)
	}
}

func TestInvoiceFilename(t *testing.T) {
	at := time.UnixMilli(1756000000000).UTC()
	got := InvoiceFilename("Ramesh Kumar", at)

	if got != "invoice_ramesh-kumar_1756000000000.pdf" {
		t.Fatalf("InvoiceFilename = %q", got)
	}
}
