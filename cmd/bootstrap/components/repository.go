package components

import (
	"lesson-scheduler/internal/infra/db"
	"lesson-scheduler/internal/infra/repository"
	"lesson-scheduler/internal/usecase"
	"lesson-scheduler/internal/usecase/commands"
	"lesson-scheduler/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write side
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repository.NewClientRepository,
			fx.As(new(commands.ClientRepository)),
		),
		fx.Annotate(
			repository.NewPackageRepository,
			fx.As(new(commands.PackageRepository)),
		),
		fx.Annotate(
			repository.NewSlotRepository,
			fx.As(new(commands.SlotRepository)),
		),
		fx.Annotate(
			repository.NewScheduleJobRepository,
			fx.As(new(commands.ScheduleJobRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		// Read side
		fx.Annotate(
			repository.NewTrainerReadStore,
			fx.As(new(queries.TrainerReadStore)),
		),
		fx.Annotate(
			repository.NewClientReadStore,
			fx.As(new(queries.ClientReadStore)),
		),
		fx.Annotate(
			repository.NewPackageReadStore,
			fx.As(new(queries.PackageReadStore)),
		),
		fx.Annotate(
			repository.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
