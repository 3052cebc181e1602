package components

import (
	"bookswap-engine/internal/infra/store"
	"bookswap-engine/internal/pkg/clock"
	"bookswap-engine/internal/usecase"
	"bookswap-engine/internal/usecase/commands"
	"bookswap-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var EngineModule = fx.Module("engine",
	engineBaseOption,
	engineCommandsModule,
	engineQueriesModule,
)

var engineBaseOption = fx.Provide(
	clock.NewRealClock,
	store.New,
	usecase.NewStateMachine,
	usecase.NewReconciler,
)

var engineCommandsModule = fx.Module("engine/commands",
	fx.Provide(
		commands.NewSwapCommands,
		commands.NewVerificationCommands,
		commands.NewExtensionCommands,
	),
)

var engineQueriesModule = fx.Module("engine/queries",
	fx.Provide(
		queries.NewSwapQueries,
		queries.NewLocationQueries,
	),
)
