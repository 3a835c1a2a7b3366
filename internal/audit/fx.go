package audit

import (
	"go.uber.org/fx"

	"github.com/tipaniya/hisaab/internal/audit/repository"
	"github.com/tipaniya/hisaab/internal/audit/service"
)

var Module = fx.Module("audit.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
