package components

import (
	"tab-kiosk/internal/infra/prefstore"
	"tab-kiosk/internal/usecase"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		fx.Annotate(
			prefstore.NewRedisStore,
			fx.As(new(usecase.PreferenceStore)),
		),
	),
)
