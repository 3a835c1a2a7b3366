package farmer

import (
	"go.uber.org/fx"

	"github.com/tipaniya/hisaab/internal/farmer/repository"
	"github.com/tipaniya/hisaab/internal/farmer/service"
)

var Module = fx.Module("farmer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
