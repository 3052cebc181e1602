package bootstrap

import (
	"bookswap-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	GatewayModule,
	components.EngineModule,
	components.HandlerModule,
)
