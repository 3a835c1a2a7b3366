package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/tipaniya/hisaab/internal/servicetype/domain"
	"github.com/tipaniya/hisaab/internal/servicetype/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:svctype_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&domain.ServiceType{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(4)
	if err != nil {
		t.Fatalf("new node: %v", err)
	}

	return New(Params{Log: zap.NewNop(), GenID: node, Repo: repository.Provide(db)})
}

func TestCreateServiceType(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(context.Background(), domain.CreateServiceTypeRequest{
		Type: "  Ploughing  ",
		Rate: 300,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Type != "Ploughing" {
		t.Fatalf("type = %q, want trimmed label", created.Type)
	}
	if created.Rate != 300 {
		t.Fatalf("rate = %v", created.Rate)
	}
}

func TestCreateServiceTypeValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateServiceTypeRequest{Type: "  ", Rate: 300})
	if !errors.Is(err, domain.ErrInvalidType) {
		t.Fatalf("blank type: expected ErrInvalidType, got %v", err)
	}

	for _, rate := range []float64{0, -50} {
		_, err := svc.Create(context.Background(), domain.CreateServiceTypeRequest{Type: "Sowing", Rate: rate})
		if !errors.Is(err, domain.ErrInvalidRate) {
			t.Fatalf("rate %v: expected ErrInvalidRate, got %v", rate, err)
		}
	}
}

func TestListOrdersByLabel(t *testing.T) {
	svc := newTestService(t)

	for _, label := range []string{"Sowing", "Harrowing", "Ploughing"} {
		if _, err := svc.Create(context.Background(), domain.CreateServiceTypeRequest{Type: label, Rate: 200}); err != nil {
			t.Fatalf("create %s: %v", label, err)
		}
	}

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 service types, got %d", len(listed))
	}
	if listed[0].Type != "Harrowing" || listed[1].Type != "Ploughing" || listed[2].Type != "Sowing" {
		t.Fatalf("order = %q, %q, %q", listed[0].Type, listed[1].Type, listed[2].Type)
	}
}
