package components

import (
	"context"
	"log/slog"

	"tab-kiosk/internal/pkg/clock"
	"tab-kiosk/internal/pkg/config"
	"tab-kiosk/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewCatalogStore,
		NewSessionRegistry,
	),
	fx.Invoke(
		warmCatalog,
		startJanitor,
	),
)

func NewSessionRegistry(
	catalogStore *usecase.CatalogStore,
	ledger usecase.LedgerGateway,
	prefs usecase.PreferenceStore,
	clk clock.Clock,
	cfg config.Config,
) *usecase.SessionRegistry {
	return usecase.NewSessionRegistry(catalogStore, ledger, prefs, clk, cfg.Session)
}

// warmCatalog fires the one-shot catalog load at startup. A failure is not
// fatal: the items endpoint retries the load on demand.
func warmCatalog(lc fx.Lifecycle, catalogStore *usecase.CatalogStore) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := catalogStore.Load(ctx); err != nil {
				slog.Warn("initial catalog load failed", "error", err)
			}
			return nil
		},
	})
}

func startJanitor(lc fx.Lifecycle, registry *usecase.SessionRegistry) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				registry.RunJanitor(ctx)
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
}
