package components

import (
	"tab-kiosk/internal/handler"
	"tab-kiosk/internal/handler/api"
	"tab-kiosk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewSessionHandler,
		middleware.NewKioskMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
