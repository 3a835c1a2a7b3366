package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	authdomain "github.com/tipaniya/hisaab/internal/auth/domain"
	"github.com/tipaniya/hisaab/internal/entry/domain"
	farmerdomain "github.com/tipaniya/hisaab/internal/farmer/domain"
	servicetypedomain "github.com/tipaniya/hisaab/internal/servicetype/domain"
	"gorm.io/gorm"
)

type fixture struct {
	repo domain.Repository

	farmerID     snowflake.ID
	adminID      snowflake.ID
	driverID     snowflake.ID
	otherAdminID snowflake.ID
}

func setup(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:entryrepo_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&authdomain.User{},
		&farmerdomain.Farmer{},
		&servicetypedomain.ServiceType{},
		&domain.Entry{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(2)
	if err != nil {
		t.Fatalf("new node: %v", err)
	}

	f := &fixture{
		repo:         Provide(db),
		farmerID:     node.Generate(),
		adminID:      node.Generate(),
		driverID:     node.Generate(),
		otherAdminID: node.Generate(),
	}

	users := []authdomain.User{
		{ID: f.adminID, Username: "owner", PasswordHash: "x", FullName: "Owner", Role: authdomain.RoleAdmin},
		{ID: f.driverID, Username: "driver1", PasswordHash: "x", FullName: "Driver One", Role: authdomain.RoleDriver, AdminID: &f.adminID},
		{ID: f.otherAdminID, Username: "rival", PasswordHash: "x", FullName: "Rival", Role: authdomain.RoleAdmin},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("seed users: %v", err)
	}

	farmer := farmerdomain.Farmer{ID: f.farmerID, Name: "Ramesh Kumar", Contact: "9876543210"}
	if err := db.Create(&farmer).Error; err != nil {
		t.Fatalf("seed farmer: %v", err)
	}

	svcType := servicetypedomain.ServiceType{ID: node.Generate(), Type: "Ploughing", Rate: 300}
	if err := db.Create(&svcType).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}

	day := func(d int) time.Time {
		return time.Date(2025, time.July, d, 0, 0, 0, 0, time.UTC)
	}
	entries := []domain.Entry{
		{ID: node.Generate(), FarmerID: f.farmerID, ServiceID: svcType.ID, UserID: f.adminID, Hours: 2, EntryDate: day(5), Remark: "by admin"},
		{ID: node.Generate(), FarmerID: f.farmerID, ServiceID: svcType.ID, UserID: f.driverID, Hours: 3, EntryDate: day(7), Remark: "by driver"},
		{ID: node.Generate(), FarmerID: f.farmerID, ServiceID: svcType.ID, UserID: f.otherAdminID, Hours: 4, EntryDate: day(9), Remark: "by rival"},
	}
	if err := db.Create(&entries).Error; err != nil {
		t.Fatalf("seed entries: %v", err)
	}

	return f
}

func TestListVisibleAdminSeesOwnAndReports(t *testing.T) {
	f := setup(t)

	details, err := f.repo.ListVisible(context.Background(), f.farmerID, domain.Visibility{
		RequesterID:    f.adminID,
		IncludeReports: true,
	})
	if err != nil {
		t.Fatalf("list visible: %v", err)
	}

	if len(details) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(details))
	}
	for _, d := range details {
		if d.UserID == f.otherAdminID {
			t.Fatal("another admin's entry leaked into the result")
		}
	}
	// Most recent first.
	if !details[0].EntryDate.After(details[1].EntryDate) {
		t.Fatalf("entries out of order: %v then %v", details[0].EntryDate, details[1].EntryDate)
	}
}

func TestListVisibleDriverSeesOnlyOwn(t *testing.T) {
	f := setup(t)

	details, err := f.repo.ListVisible(context.Background(), f.farmerID, domain.Visibility{
		RequesterID: f.driverID,
	})
	if err != nil {
		t.Fatalf("list visible: %v", err)
	}

	if len(details) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(details))
	}
	if details[0].UserID != f.driverID {
		t.Fatalf("entry user = %v, want %v", details[0].UserID, f.driverID)
	}
}

func TestListVisibleJoinsLiveRate(t *testing.T) {
	f := setup(t)

	details, err := f.repo.ListVisible(context.Background(), f.farmerID, domain.Visibility{
		RequesterID: f.driverID,
	})
	if err != nil {
		t.Fatalf("list visible: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(details))
	}

	d := details[0]
	if d.Rate != 300 {
		t.Fatalf("rate = %v, want 300", d.Rate)
	}
	if d.Cost() != 900 {
		t.Fatalf("cost = %v, want 900", d.Cost())
	}
	if d.FarmerName != "Ramesh Kumar" {
		t.Fatalf("farmer name = %q", d.FarmerName)
	}
	if d.ServiceType != "Ploughing" {
		t.Fatalf("service type = %q", d.ServiceType)
	}
}

func TestListByFarmerAndUser(t *testing.T) {
	f := setup(t)

	details, err := f.repo.ListByFarmerAndUser(context.Background(), f.farmerID, f.adminID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(details))
	}
	if details[0].UserID != f.adminID {
		t.Fatalf("entry user = %v, want %v", details[0].UserID, f.adminID)
	}
}
