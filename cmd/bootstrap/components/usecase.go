package components

import (
	"course-booking/internal/pkg/jwt"
	"course-booking/internal/usecase"
	"course-booking/internal/usecase/commands"
	"course-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		fx.Annotate(
			func(s *jwt.Service) *jwt.Service { return s },
			fx.As(new(commands.TokenIssuer)),
		),
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewCancelCommands,
		commands.NewCourseCommands,
		commands.NewCategoryCommands,
		commands.NewPrefillCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAdminQueries,
		queries.NewBookingQueries,
		queries.NewCourseQueries,
		queries.NewCancelLogQueries,
		queries.NewCategoryQueries,
		queries.NewStatisticsQueries,
		queries.NewPrefillQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
