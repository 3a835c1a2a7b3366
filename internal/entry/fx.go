package entry

import (
	"go.uber.org/fx"

	"github.com/tipaniya/hisaab/internal/entry/repository"
	"github.com/tipaniya/hisaab/internal/entry/service"
)

var Module = fx.Module("entry.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
