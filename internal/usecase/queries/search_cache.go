package queries

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"staybook/internal/pkg/config"
	"staybook/internal/usecase/shared"
)

const (
	searchKeyPrefix = "listing:search:"
	searchIndexKey  = "listing:search:index"
	areasKey        = "area:all"
)

// SearchCache stores listing pages as one hash per signature, one field per page.
// Every signature is also recorded in an index set so a write can drop them all.
// Failures are logged and reported as misses.
type SearchCache struct {
	cache shared.Cache
	ttl   time.Duration
}

func NewSearchCache(cache shared.Cache, cfg config.Config) *SearchCache {
	return &SearchCache{cache: cache, ttl: cfg.Search.CacheTTL}
}

func (c *SearchCache) Page(ctx context.Context, signature string, page int) (*ListingPage, bool) {
	raw, err := c.cache.GetField(ctx, signature, strconv.Itoa(page))
	if err != nil {
		if !errors.Is(err, shared.ErrCacheMiss) {
			slog.Warn("search cache read failed", "signature", signature, "page", page, "error", err.Error())
		}
		return nil, false
	}

	var cached ListingPage
	if err := json.Unmarshal(raw, &cached); err != nil {
		slog.Warn("search cache entry unreadable", "signature", signature, "page", page, "error", err.Error())
		return nil, false
	}
	return &cached, true
}

func (c *SearchCache) StorePage(ctx context.Context, signature string, page int, p *ListingPage) {
	raw, err := json.Marshal(p)
	if err != nil {
		slog.Warn("search cache entry not serializable", "signature", signature, "error", err.Error())
		return
	}

	err = c.cache.GroupedWrite(ctx,
		shared.SetFieldOp(signature, strconv.Itoa(page), raw),
		shared.ExpireOp(signature, c.ttl),
		shared.AddMemberOp(searchIndexKey, signature),
		shared.ExpireOp(searchIndexKey, c.ttl),
	)
	if err != nil {
		slog.Warn("search cache write failed", "signature", signature, "page", page, "error", err.Error())
	}
}

// InvalidateSearch drops every cached search page. It is called after commits that
// change what a search would return.
func (c *SearchCache) InvalidateSearch(ctx context.Context) {
	signatures, err := c.cache.Members(ctx, searchIndexKey)
	if err != nil && !errors.Is(err, shared.ErrCacheMiss) {
		slog.Warn("search cache index read failed", "error", err.Error())
		return
	}

	keys := append(signatures, searchIndexKey)
	if err := c.cache.Delete(ctx, keys...); err != nil {
		slog.Warn("search cache invalidation failed", "keys", len(keys), "error", err.Error())
	}
}
