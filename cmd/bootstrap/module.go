package bootstrap

import (
	"tab-kiosk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	RedisModule,
	LedgerModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)
