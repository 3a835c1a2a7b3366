package invoice

import (
	"go.uber.org/fx"

	"github.com/tipaniya/hisaab/internal/invoice/render"
	"github.com/tipaniya/hisaab/internal/invoice/service"
)

var Module = fx.Module("invoice.service",
	fx.Provide(render.NewPDF),
	fx.Provide(service.New),
)
