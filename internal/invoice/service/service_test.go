package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/tipaniya/hisaab/internal/auth/domain"
	"github.com/tipaniya/hisaab/internal/config"
	entrydomain "github.com/tipaniya/hisaab/internal/entry/domain"
	farmerdomain "github.com/tipaniya/hisaab/internal/farmer/domain"
	"github.com/tipaniya/hisaab/internal/invoice/domain"
	paymentdomain "github.com/tipaniya/hisaab/internal/payment/domain"
	"go.uber.org/zap"
)

type fakeFarmerRepo struct {
	farmer *farmerdomain.Farmer
	calls  int
}

func (f *fakeFarmerRepo) Insert(ctx context.Context, farmer *farmerdomain.Farmer) error {
	return nil
}

func (f *fakeFarmerRepo) FindByID(ctx context.Context, id snowflake.ID) (*farmerdomain.Farmer, error) {
	f.calls++
	if f.farmer == nil || f.farmer.ID != id {
		return nil, farmerdomain.ErrNotFound
	}
	return f.farmer, nil
}

func (f *fakeFarmerRepo) List(ctx context.Context) ([]farmerdomain.Farmer, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users map[snowflake.ID]*authdomain.User
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *authdomain.User) error {
	return nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*authdomain.User, error) {
	return nil, authdomain.ErrUserNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id snowflake.ID) (*authdomain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, authdomain.ErrUserNotFound
	}
	return user, nil
}

type fakeEntryRepo struct {
	entries []entrydomain.EntryDetail
	lastVis entrydomain.Visibility
}

func (f *fakeEntryRepo) Insert(ctx context.Context, entry *entrydomain.Entry) error {
	return nil
}

func (f *fakeEntryRepo) ListByUser(ctx context.Context, userID snowflake.ID) ([]entrydomain.EntryDetail, error) {
	return nil, nil
}

func (f *fakeEntryRepo) ListByFarmerAndUser(ctx context.Context, farmerID, userID snowflake.ID) ([]entrydomain.EntryDetail, error) {
	return nil, nil
}

func (f *fakeEntryRepo) ListVisible(ctx context.Context, farmerID snowflake.ID, vis entrydomain.Visibility) ([]entrydomain.EntryDetail, error) {
	f.lastVis = vis
	return f.entries, nil
}

type fakePaymentRepo struct {
	payments []paymentdomain.PaymentDetail
	calls    int
}

func (f *fakePaymentRepo) Insert(ctx context.Context, payment *paymentdomain.Payment) error {
	return nil
}

func (f *fakePaymentRepo) FindByID(ctx context.Context, id snowflake.ID) (*paymentdomain.PaymentDetail, error) {
	return nil, paymentdomain.ErrNotFound
}

func (f *fakePaymentRepo) ListByFarmer(ctx context.Context, farmerID snowflake.ID) ([]paymentdomain.PaymentDetail, error) {
	f.calls++
	return f.payments, nil
}

func (f *fakePaymentRepo) ListByAdmin(ctx context.Context, adminID snowflake.ID) ([]paymentdomain.PaymentDetail, error) {
	return nil, nil
}

type fakeRenderer struct {
	lastInvoice domain.Invoice
	lastReport  config.ReportConfig
	calls       int
}

func (f *fakeRenderer) Render(inv domain.Invoice, report config.ReportConfig) ([]byte, error) {
	f.lastInvoice = inv
	f.lastReport = report
	f.calls++
	return []byte("%PDF-1.4 fake"), nil
}

type fixture struct {
	svc      domain.Service
	farmers  *fakeFarmerRepo
	users    *fakeUserRepo
	entries  *fakeEntryRepo
	payments *fakePaymentRepo
	renderer *fakeRenderer

	farmerID snowflake.ID
	adminID  snowflake.ID
	driverID snowflake.ID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	farmerID := snowflake.ID(1001)
	adminID := snowflake.ID(2001)
	driverID := snowflake.ID(2002)

	farmers := &fakeFarmerRepo{
		farmer: &farmerdomain.Farmer{
			ID:      farmerID,
			Name:    "Ramesh Kumar",
			Contact: "9876543210",
		},
	}
	users := &fakeUserRepo{
		users: map[snowflake.ID]*authdomain.User{
			adminID: {
				ID:       adminID,
				Username: "owner",
				FullName: "Owner",
				Role:     authdomain.RoleAdmin,
			},
			driverID: {
				ID:       driverID,
				Username: "driver1",
				FullName: "Driver One",
				Role:     authdomain.RoleDriver,
				AdminID:  &adminID,
			},
		},
	}

	day := func(d int) time.Time {
		return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
	}
	entries := &fakeEntryRepo{
		entries: []entrydomain.EntryDetail{
			{FarmerID: farmerID, UserID: adminID, ServiceType: "Ploughing", Hours: 2.5, Rate: 300, Remark: "north field", EntryDate: day(12)},
			{FarmerID: farmerID, UserID: driverID, ServiceType: "Harrowing", Hours: 3.5, Rate: 200, Remark: "", EntryDate: day(10)},
		},
	}
	payments := &fakePaymentRepo{
		payments: []paymentdomain.PaymentDetail{
			{FarmerID: farmerID, Amount: 500, PaymentDate: day(15), Remark: "cash"},
			{FarmerID: farmerID, Amount: 300, PaymentDate: day(20), Remark: ""},
		},
	}
	renderer := &fakeRenderer{}

	svc := New(Params{
		Log:      zap.NewNop(),
		Farmers:  farmers,
		Users:    users,
		Entries:  entries,
		Payments: payments,
		Renderer: renderer,
		Report:   &config.ReportConfigHolder{},
	})

	return &fixture{
		svc:      svc,
		farmers:  farmers,
		users:    users,
		entries:  entries,
		payments: payments,
		renderer: renderer,
		farmerID: farmerID,
		adminID:  adminID,
		driverID: driverID,
	}
}

func TestBuildAggregatesTotals(t *testing.T) {
	f := newFixture(t)

	doc, err := f.svc.Build(context.Background(), domain.BuildRequest{
		FarmerID:         f.farmerID.String(),
		RequestingUserID: f.adminID.String(),
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	inv := f.renderer.lastInvoice
	if inv.TotalCost != 1450 {
		t.Fatalf("total cost = %v, want 1450", inv.TotalCost)
	}
	if inv.TotalPaid != 800 {
		t.Fatalf("total paid = %v, want 800", inv.TotalPaid)
	}
	if inv.Balance() != 650 {
		t.Fatalf("balance = %v, want 650", inv.Balance())
	}
	if len(inv.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(inv.Lines))
	}
	if inv.Lines[0].Seq != 1 || inv.Lines[1].Seq != 2 {
		t.Fatalf("line sequence = %d, %d", inv.Lines[0].Seq, inv.Lines[1].Seq)
	}
	if inv.FarmerName != "Ramesh Kumar" {
		t.Fatalf("farmer name = %q", inv.FarmerName)
	}

	if doc.ContentType != "application/pdf" {
		t.Fatalf("content type = %q", doc.ContentType)
	}
	if !strings.HasPrefix(doc.Filename, "invoice_ramesh-kumar_") || !strings.HasSuffix(doc.Filename, ".pdf") {
		t.Fatalf("filename = %q", doc.Filename)
	}
	if len(doc.Bytes) == 0 {
		t.Fatal("expected rendered bytes")
	}
}

func TestBuildVisibilityByRole(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.Build(context.Background(), domain.BuildRequest{
		FarmerID:         f.farmerID.String(),
		RequestingUserID: f.adminID.String(),
	}); err != nil {
		t.Fatalf("admin build: %v", err)
	}
	if !f.entries.lastVis.IncludeReports {
		t.Fatal("admin requester must include reports")
	}
	if f.entries.lastVis.RequesterID != f.adminID {
		t.Fatalf("requester = %v, want %v", f.entries.lastVis.RequesterID, f.adminID)
	}

	if _, err := f.svc.Build(context.Background(), domain.BuildRequest{
		FarmerID:         f.farmerID.String(),
		RequestingUserID: f.driverID.String(),
	}); err != nil {
		t.Fatalf("driver build: %v", err)
	}
	if f.entries.lastVis.IncludeReports {
		t.Fatal("driver requester must not include reports")
	}
}

func TestBuildNoEntries(t *testing.T) {
	f := newFixture(t)
	f.entries.entries = nil

	_, err := f.svc.Build(context.Background(), domain.BuildRequest{
		FarmerID:         f.farmerID.String(),
		RequestingUserID: f.adminID.String(),
	})
	if !errors.Is(err, domain.ErrNoEntries) {
		t.Fatalf("expected ErrNoEntries, got %v", err)
	}
	if f.payments.calls != 0 {
		t.Fatal("payments must not be fetched when no entries are visible")
	}
	if f.renderer.calls != 0 {
		t.Fatal("renderer must not run when no entries are visible")
	}
}

func TestBuildValidationAggregatesFields(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Build(context.Background(), domain.BuildRequest{})

	var invErr *domain.InvalidRequestError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvalidRequestError, got %v", err)
	}
	if len(invErr.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(invErr.Fields))
	}
	for _, field := range invErr.Fields {
		if field.Code != "required" {
			t.Fatalf("field %s code = %q, want required", field.Field, field.Code)
		}
	}
	if f.farmers.calls != 0 {
		t.Fatal("stores must not be touched on invalid requests")
	}
}

func TestBuildInvalidIdentifiers(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Build(context.Background(), domain.BuildRequest{
		FarmerID:         "not-a-number",
		RequestingUserID: "also-bad",
	})

	var invErr *domain.InvalidRequestError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvalidRequestError, got %v", err)
	}
	if len(invErr.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(invErr.Fields))
	}
	for _, field := range invErr.Fields {
		if field.Code != "invalid_id" {
			t.Fatalf("field %s code = %q, want invalid_id", field.Field, field.Code)
		}
	}
}

func TestBuildUnknownFarmer(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Build(context.Background(), domain.BuildRequest{
		FarmerID:         snowflake.ID(9999).String(),
		RequestingUserID: f.adminID.String(),
	})
	if !errors.Is(err, farmerdomain.ErrNotFound) {
		t.Fatalf("expected farmer not found, got %v", err)
	}
}

func TestBuildNegativeBalance(t *testing.T) {
	f := newFixture(t)
	f.payments.payments = append(f.payments.payments, paymentdomain.PaymentDetail{
		FarmerID: f.farmerID, Amount: 1000, PaymentDate: time.Now(), Remark: "advance",
	})

	if _, err := f.svc.Build(context.Background(), domain.BuildRequest{
		FarmerID:         f.farmerID.String(),
		RequestingUserID: f.adminID.String(),
	}); err != nil {
		t.Fatalf("build: %v", err)
	}

	if got := f.renderer.lastInvoice.Balance(); got != -350 {
		t.Fatalf("balance = %v, want -350", got)
	}
}

func TestBuildDeterministicForSameData(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 2; i++ {
		if _, err := f.svc.Build(context.Background(), domain.BuildRequest{
			FarmerID:         f.farmerID.String(),
			RequestingUserID: f.adminID.String(),
		}); err != nil {
			t.Fatalf("build %d: %v", i, err)
		}
	}

	if f.renderer.lastInvoice.TotalCost != 1450 || f.renderer.lastInvoice.TotalPaid != 800 {
		t.Fatalf("totals drifted: %+v", f.renderer.lastInvoice)
	}
}
