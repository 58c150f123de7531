package bootstrap

import (
	"tab-kiosk/internal/infra/ledger"
	"tab-kiosk/internal/pkg/config"
	"tab-kiosk/internal/usecase"

	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	fx.Provide(
		fx.Annotate(
			NewLedgerClient,
			fx.As(new(usecase.LedgerGateway)),
		),
	),
)

func NewLedgerClient(cfg config.Config) *ledger.Client {
	return ledger.NewClient(cfg.Ledger)
}
