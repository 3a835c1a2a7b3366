package payment

import (
	"go.uber.org/fx"

	"github.com/tipaniya/hisaab/internal/payment/repository"
	"github.com/tipaniya/hisaab/internal/payment/service"
)

var Module = fx.Module("payment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
