package components

import (
	"hotel-management-system/internal/domain/booking"
	"hotel-management-system/internal/infra/notify"
	"hotel-management-system/internal/pkg/clock"
	"hotel-management-system/internal/usecase/commands"
	"hotel-management-system/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	booking.NewFactory,
	fx.Annotate(
		notify.NewJobNotifier,
		fx.As(new(commands.Notifier)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartCommands,
		commands.NewReservationCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewBookingQueries,
		queries.NewRevenueQueries,
	),
)
