package migration

import (
	auditdomain "github.com/tipaniya/hisaab/internal/audit/domain"
	authdomain "github.com/tipaniya/hisaab/internal/auth/domain"
	"github.com/tipaniya/hisaab/internal/config"
	entrydomain "github.com/tipaniya/hisaab/internal/entry/domain"
	farmerdomain "github.com/tipaniya/hisaab/internal/farmer/domain"
	paymentdomain "github.com/tipaniya/hisaab/internal/payment/domain"
	"github.com/tipaniya/hisaab/internal/seed"
	servicetypedomain "github.com/tipaniya/hisaab/internal/servicetype/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// sqlite and mysql are dev/test paths; gorm derives the
			// schema from the models there.
			if err := conn.AutoMigrate(
				&authdomain.User{},
				&authdomain.Session{},
				&farmerdomain.Farmer{},
				&servicetypedomain.ServiceType{},
				&entrydomain.Entry{},
				&paymentdomain.Payment{},
				&auditdomain.AuditLog{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedDefaultAdmin {
			return seed.EnsureDefaultAdmin(conn)
		}
		return nil
	}),
)
