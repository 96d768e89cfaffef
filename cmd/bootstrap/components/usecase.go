package components

import (
	"lesson-scheduler/internal/pkg/clock"
	"lesson-scheduler/internal/usecase"
	"lesson-scheduler/internal/usecase/commands"
	"lesson-scheduler/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewAuthUseCase,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewScheduleCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTrainerQueries,
		queries.NewClientQueries,
		queries.NewPackageQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
