// Package format holds the pure formatting helpers used when laying
// out rendered documents.
package format

import (
	"fmt"
	"math"
	"time"

	"github.com/gosimple/slug"
)

// FormatHours renders decimal hours as "H:MM" (2.5 -> "2:30").
//
// The fractional part is rounded to whole minutes. Inputs just under a
// whole hour round to 60 minutes without carrying into the hour
// (1.999 -> "1:60"); the books have always shown it that way.
func FormatHours(hours float64) string {
	whole := math.Floor(hours)
	minutes := math.Round((hours - whole) * 60)
	return fmt.Sprintf("%d:%02d", int(whole), int(minutes))
}

// FormatAmount renders a monetary value with two decimal places.
// Rounding happens here and only here; totals are accumulated at full
// precision.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatDate renders a timestamp day-first.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// Truncate clips a string to at most max characters. No ellipsis.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// InvoiceFilename builds the suggested download name for a farmer's
// invoice generated at the given time.
func InvoiceFilename(farmerName string, generatedAt time.Time) string {
	return fmt.Sprintf("invoice_%s_%d.pdf", slug.Make(farmerName), generatedAt.UnixMilli())
}
