package auth

import (
	"go.uber.org/fx"

	"github.com/tipaniya/hisaab/internal/auth/repository"
	"github.com/tipaniya/hisaab/internal/auth/service"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.Provide),
	fx.Provide(repository.ProvideSessions),
	fx.Provide(service.New),
)
