package servicetype

import (
	"go.uber.org/fx"

	"github.com/tipaniya/hisaab/internal/servicetype/repository"
	"github.com/tipaniya/hisaab/internal/servicetype/service"
)

var Module = fx.Module("servicetype.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
