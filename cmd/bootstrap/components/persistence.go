package components

import (
	"course-booking/internal/infra/pgstore"
	"course-booking/internal/infra/readstore"
	"course-booking/internal/infra/uow"
	"course-booking/internal/pkg/clock"
	"course-booking/internal/pkg/config"
	"course-booking/internal/usecase/queries"
	"course-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Write repositories are built per transaction inside the unit of work, so
// only the read side is provided here.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Course
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CourseReadQueries)),
		),
		fx.Annotate(
			readstore.NewCourseReadStore,
			fx.As(new(queries.CourseReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// CancelLog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CancelLogReadQueries)),
		),
		fx.Annotate(
			readstore.NewCancelLogReadStore,
			fx.As(new(queries.CancelLogReadStore)),
		),
		// Category
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CategoryReadQueries)),
		),
		fx.Annotate(
			readstore.NewCategoryReadStore,
			fx.As(new(queries.CategoryReadStore)),
		),
		// Admin
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AdminReadQueries)),
		),
		fx.Annotate(
			readstore.NewAdminReadStore,
			fx.As(new(queries.AdminReadStore)),
		),
	),
)

var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		NewUnitOfWork,
	),
)

func NewUnitOfWork(pool *pgxpool.Pool, q *pgstore.Queries, clk clock.Clock, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, q, clk, cfg.Tx)
}

func NewSQLQueries(_ *pgxpool.Pool) *pgstore.Queries {
	return pgstore.New()
}

func NewDBTX(pool *pgxpool.Pool) pgstore.DBTX {
	return pool
}
