package components

import (
	"seat-reservation/internal/infra/query"
	"seat-reservation/internal/infra/readstore"
	"seat-reservation/internal/infra/uow"
	"seat-reservation/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewQueries,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewStore)),
		),
	),
)

// Write repositories are built per transaction by the unit of work, so only
// the unit of work itself is provided here.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}
