package components

import (
	"bookswap-engine/internal/handler"
	"bookswap-engine/internal/handler/api"
	"bookswap-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSwapHandler,
		api.NewExtensionHandler,
		api.NewLocationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
