package render

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/tipaniya/hisaab/internal/config"
	"github.com/tipaniya/hisaab/internal/invoice/domain"
	"github.com/tipaniya/hisaab/internal/invoice/format"
)

// Renderer turns aggregated invoice content into document bytes.
type Renderer interface {
	Render(inv domain.Invoice, report config.ReportConfig) ([]byte, error)
}

type pdfRenderer struct{}

func NewPDF() Renderer {
	return &pdfRenderer{}
}

func (r *pdfRenderer) Render(inv domain.Invoice, report config.ReportConfig) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()

	// Title block
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetXY(0, 40)
	pdf.CellFormat(pageW, 28, report.OrganizationName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetXY(0, 74)
	pdf.CellFormat(pageW, 14, "Date: "+format.FormatDate(inv.GeneratedAt), "", 1, "C", false, 0, "")

	// Farmer identification
	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(colSeq, 120, "Farmer Name: "+inv.FarmerName)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(colSeq, 138, "Contact: "+inv.FarmerContact)

	// Service-detail table header
	const tableTop = 170.0
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(colSeq, tableTop, "S.No")
	pdf.Text(colDate, tableTop, "Date")
	pdf.Text(colService, tableTop, "Service Type")
	pdf.Text(colRemark, tableTop, "Description")
	pdf.Text(colTime, tableTop, "Time (H:MM)")
	pdf.Text(colAmount, tableTop, fmt.Sprintf("Amount (%s)", report.CurrencyLabel))
	pdf.Line(ruleLeft, tableTop+15, ruleRight, tableTop+15)

	// Rows
	pdf.SetFont("Helvetica", "", 10)
	positions := PlanRows(tableTop+25, len(inv.Lines))
	page := 0
	y := tableTop + 25
	for i, line := range inv.Lines {
		pos := positions[i]
		if pos.Page > page {
			pdf.AddPage()
			page = pos.Page
		}
		remark := line.Remark
		if remark == "" {
			remark = "-"
		}
		pdf.Text(colSeq, pos.Y, fmt.Sprintf("%d", line.Seq))
		pdf.Text(colDate, pos.Y, format.FormatDate(line.Date))
		pdf.Text(colService, pos.Y, line.ServiceType)
		pdf.Text(colRemark, pos.Y, format.Truncate(remark, remarkLimit))
		pdf.Text(colTime, pos.Y, format.FormatHours(line.Hours))
		pdf.Text(colAmount, pos.Y, format.FormatAmount(line.Cost))
		y = pos.Y + RowHeight
	}

	// Service total
	pdf.Line(ruleLeft, y, ruleRight, y)
	y += 20
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(colRemark, y, "Service Total:")
	pdf.Text(colAmount, y, format.FormatAmount(inv.TotalCost))

	// Payments
	if len(inv.Payments) > 0 {
		y += 40
		if y > PageBreakY {
			pdf.AddPage()
			y = PageTopMargin
		}
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(colSeq, y, "Payments Received")
		y += 20

		pdf.SetFont("Helvetica", "B", 10)
		pdf.Text(colSeq, y, "Date")
		pdf.Text(colService, y, "Amount")
		pdf.Text(colRemark, y, "Remark")
		pdf.Line(ruleLeft, y+8, ruleRight, y+8)

		pdf.SetFont("Helvetica", "", 10)
		payPositions := PlanRows(y+25, len(inv.Payments))
		relPage := 0
		for i, payment := range inv.Payments {
			pos := payPositions[i]
			if pos.Page > relPage {
				pdf.AddPage()
				relPage = pos.Page
			}
			remark := payment.Remark
			if remark == "" {
				remark = "-"
			}
			pdf.Text(colSeq, pos.Y, format.FormatDate(payment.Date))
			pdf.Text(colService, pos.Y, format.FormatAmount(payment.Amount))
			pdf.Text(colRemark, pos.Y, format.Truncate(remark, paymentRemarkLimit))
			y = pos.Y + RowHeight
		}

		pdf.Line(ruleLeft, y, ruleRight, y)
		y += 20
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(colSeq, y, "Total Paid:")
		pdf.Text(colService, y, format.FormatAmount(inv.TotalPaid))
	}

	// Balance
	y += 30
	if y > PageBreakY {
		pdf.AddPage()
		y = PageTopMargin
	}
	pdf.SetFont("Helvetica", "BU", 12)
	pdf.Text(colRemark, y, "Balance Due:")
	pdf.Text(colAmount, y, format.FormatAmount(inv.Balance()))

	// Footer on the final page
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(0, pageH-60)
	pdf.CellFormat(pageW, 12, report.FooterLine, "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
