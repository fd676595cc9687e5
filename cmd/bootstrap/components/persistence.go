package components

import (
	"staybook/internal/infra/cache"
	"staybook/internal/infra/db"
	"staybook/internal/infra/readstore"
	"staybook/internal/infra/uow"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	cacheModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewDwellingReadStore,
			fx.As(new(queries.DwellingReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewAreaReadStore,
			fx.As(new(queries.AreaReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Repositories are bound per transaction inside the unit of work.
		uow.NewPostgresUoW,
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		fx.Annotate(
			NewCache,
			fx.As(new(shared.Cache)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewCache(client *redis.Client) *cache.RedisCache {
	return cache.NewRedisCache(client)
}
