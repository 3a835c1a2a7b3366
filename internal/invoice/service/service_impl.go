package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	auditdomain "github.com/tipaniya/hisaab/internal/audit/domain"
	authdomain "github.com/tipaniya/hisaab/internal/auth/domain"
	"github.com/tipaniya/hisaab/internal/config"
	entrydomain "github.com/tipaniya/hisaab/internal/entry/domain"
	farmerdomain "github.com/tipaniya/hisaab/internal/farmer/domain"
	"github.com/tipaniya/hisaab/internal/invoice/domain"
	"github.com/tipaniya/hisaab/internal/invoice/format"
	"github.com/tipaniya/hisaab/internal/invoice/render"
	paymentdomain "github.com/tipaniya/hisaab/internal/payment/domain"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Farmers  farmerdomain.Repository
	Users    authdomain.Repository
	Entries  entrydomain.Repository
	Payments paymentdomain.Repository
	Renderer render.Renderer
	Report   *config.ReportConfigHolder
	Audit    auditdomain.Service `optional:"true"`
}

// Service builds invoices: it resolves the requester's visibility,
// aggregates entries and payments, and renders the document. It holds
// no state between requests and performs no writes beyond audit.
type Service struct {
	log      *zap.Logger
	farmers  farmerdomain.Repository
	users    authdomain.Repository
	entries  entrydomain.Repository
	payments paymentdomain.Repository
	renderer render.Renderer
	report   *config.ReportConfigHolder
	audit    auditdomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		log:      p.Log.Named("invoice.service"),
		farmers:  p.Farmers,
		users:    p.Users,
		entries:  p.Entries,
		payments: p.Payments,
		renderer: p.Renderer,
		report:   p.Report,
		audit:    p.Audit,
	}
}

func (s *Service) Build(ctx context.Context, req domain.BuildRequest) (*domain.Document, error) {
	farmerID, userID, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	farmer, err := s.farmers.FindByID(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	requester, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	visible, err := s.entries.ListVisible(ctx, farmer.ID, entrydomain.Visibility{
		RequesterID:    requester.ID,
		IncludeReports: requester.Role == authdomain.RoleAdmin,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch entries: %w", err)
	}
	if len(visible) == 0 {
		return nil, domain.ErrNoEntries
	}

	payments, err := s.payments.ListByFarmer(ctx, farmer.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch payments: %w", err)
	}

	invoice := aggregate(farmer, visible, payments, time.Now())

	pdfBytes, err := s.renderer.Render(invoice, s.report.Current())
	if err != nil {
		return nil, err
	}

	if s.audit != nil {
		farmerRef := farmer.ID.String()
		s.audit.Record(ctx, &requester.ID, "invoice.generate", "farmer", &farmerRef, map[string]any{
			"entries":    len(invoice.Lines),
			"total_cost": invoice.TotalCost,
			"total_paid": invoice.TotalPaid,
		})
	}

	return &domain.Document{
		Bytes:       pdfBytes,
		ContentType: "application/pdf",
		Filename:    format.InvoiceFilename(farmer.Name, invoice.GeneratedAt),
	}, nil
}

// validateRequest checks both identifiers up front and reports every
// violation in one error, before any store access.
func validateRequest(req domain.BuildRequest) (farmerID, userID snowflake.ID, err error) {
	var fields []domain.FieldError

	rawFarmer := strings.TrimSpace(req.FarmerID)
	if rawFarmer == "" {
		fields = append(fields, domain.FieldError{Field: "farmerId", Code: "required"})
	} else if farmerID, err = snowflake.ParseString(rawFarmer); err != nil {
		fields = append(fields, domain.FieldError{Field: "farmerId", Code: "invalid_id"})
	}

	rawUser := strings.TrimSpace(req.RequestingUserID)
	if rawUser == "" {
		fields = append(fields, domain.FieldError{Field: "userId", Code: "required"})
	} else if userID, err = snowflake.ParseString(rawUser); err != nil {
		fields = append(fields, domain.FieldError{Field: "userId", Code: "invalid_id"})
	}

	if len(fields) > 0 {
		return 0, 0, &domain.InvalidRequestError{Fields: fields}
	}
	return farmerID, userID, nil
}

// aggregate computes line costs and running totals at full precision.
func aggregate(farmer *farmerdomain.Farmer, entries []entrydomain.EntryDetail, payments []paymentdomain.PaymentDetail, now time.Time) domain.Invoice {
	lines := make([]domain.Line, 0, len(entries))
	var totalCost float64
	for i, e := range entries {
		cost := e.Cost()
		totalCost += cost
		lines = append(lines, domain.Line{
			Seq:         i + 1,
			Date:        e.EntryDate,
			ServiceType: e.ServiceType,
			Remark:      e.Remark,
			Hours:       e.Hours,
			Cost:        cost,
		})
	}

	paymentLines := make([]domain.PaymentLine, 0, len(payments))
	var totalPaid float64
	for _, p := range payments {
		totalPaid += p.Amount
		paymentLines = append(paymentLines, domain.PaymentLine{
			Date:   p.PaymentDate,
			Amount: p.Amount,
			Remark: p.Remark,
		})
	}

	return domain.Invoice{
		FarmerName:    farmer.Name,
		FarmerContact: farmer.Contact,
		GeneratedAt:   now,
		Lines:         lines,
		Payments:      paymentLines,
		TotalCost:     totalCost,
		TotalPaid:     totalPaid,
	}
}
