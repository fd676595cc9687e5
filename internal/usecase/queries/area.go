package queries

//go:generate mockgen -source=$GOFILE -destination=../../testutil/mock/queries/area.go -package=queriesmock

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"
)

type AreaQueries interface {
	ListAreas(ctx context.Context) ([]AreaView, error)
}

type areaQueriesImpl struct {
	store AreaReadStore
	cache shared.Cache
	ttl   time.Duration
}

func NewAreaQueries(store AreaReadStore, cache shared.Cache, cfg config.Config) AreaQueries {
	return &areaQueriesImpl{store: store, cache: cache, ttl: cfg.Search.AreaTTL}
}

// ListAreas reads through the cache. Areas are seeded and change only with a migration.
func (q *areaQueriesImpl) ListAreas(ctx context.Context) ([]AreaView, error) {
	raw, err := q.cache.Get(ctx, areasKey)
	if err == nil {
		var areas []AreaView
		if err := json.Unmarshal(raw, &areas); err == nil {
			return areas, nil
		}
	} else if !errors.Is(err, shared.ErrCacheMiss) {
		slog.Warn("area cache read failed", "error", err.Error())
	}

	areas, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Persistence(err)
	}
	if areas == nil {
		areas = []AreaView{}
	}

	if raw, err := json.Marshal(areas); err == nil {
		if err := q.cache.SetWithExpiry(ctx, areasKey, raw, q.ttl); err != nil {
			slog.Warn("area cache write failed", "error", err.Error())
		}
	}
	return areas, nil
}
