package queries

//go:generate mockgen -source=$GOFILE -destination=../../testutil/mock/queries/listing.go -package=queriesmock

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"staybook/internal/domain/availability"
	"staybook/internal/domain/reservation"
	"staybook/internal/infra"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type SortKey string

const (
	SortNewest   SortKey = "new"
	SortBooking  SortKey = "booking"
	SortPriceInc SortKey = "price-inc"
	SortPriceDes SortKey = "price-des"
)

// ParseSortKey falls back to newest-first for anything it does not recognise.
func ParseSortKey(v string) SortKey {
	switch SortKey(v) {
	case SortBooking, SortPriceInc, SortPriceDes:
		return SortKey(v)
	default:
		return SortNewest
	}
}

type SearchParams struct {
	AreaID   *int
	CheckIn  *time.Time
	CheckOut *time.Time
	Sort     SortKey
	Page     int
}

func (p SearchParams) Normalize() SearchParams {
	if p.Page < 1 {
		p.Page = 1
	}
	p.Sort = ParseSortKey(string(p.Sort))
	if p.CheckIn != nil {
		in := reservation.CalendarDate(*p.CheckIn)
		p.CheckIn = &in
	}
	if p.CheckOut != nil {
		out := reservation.CalendarDate(*p.CheckOut)
		p.CheckOut = &out
	}
	return p
}

// Signature identifies the filtered query independent of page.
func (p SearchParams) Signature() string {
	area, in, out := "", "", ""
	if p.AreaID != nil {
		area = strconv.Itoa(*p.AreaID)
	}
	if p.CheckIn != nil {
		in = p.CheckIn.Format(reservation.DateLayout)
	}
	if p.CheckOut != nil {
		out = p.CheckOut.Format(reservation.DateLayout)
	}
	return fmt.Sprintf("%said=%s:sd=%s:ed=%s:sk=%s", searchKeyPrefix, area, in, out, p.Sort)
}

type ListingQueries interface {
	SearchListings(ctx context.Context, params SearchParams) (*ListingPage, error)
	ListNewest(ctx context.Context) ([]DwellingListItem, error)
	GetDwelling(ctx context.Context, id uuid.UUID) (*DwellingDetailView, error)
	ListOwnDwellings(ctx context.Context, ownerID uuid.UUID) ([]DwellingListItem, error)
}

type listingQueriesImpl struct {
	dwellings    DwellingReadStore
	reservations ReservationReadStore
	cache        *SearchCache
	flight       singleflight.Group
	pageSize     int
	indexLimit   int
	flightTTL    time.Duration
}

func NewListingQueries(dwellings DwellingReadStore, reservations ReservationReadStore, cache *SearchCache, cfg config.Config) ListingQueries {
	return &listingQueriesImpl{
		dwellings:    dwellings,
		reservations: reservations,
		cache:        cache,
		pageSize:     cfg.Search.PageSize,
		indexLimit:   cfg.Search.IndexLimit,
		flightTTL:    cfg.Search.FlightTimeout,
	}
}

func (q *listingQueriesImpl) SearchListings(ctx context.Context, params SearchParams) (*ListingPage, error) {
	params = params.Normalize()
	window, err := availability.NewBounds(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, err
	}

	signature := params.Signature()
	if page, ok := q.cache.Page(ctx, signature, params.Page); ok {
		return page, nil
	}

	// Concurrent misses for the same page share one authoritative read. The shared
	// read is detached from any single caller's cancellation.
	ch := q.flight.DoChan(signature+"#"+strconv.Itoa(params.Page), func() (any, error) {
		fctx, cancel := q.flightContext(ctx)
		defer cancel()

		page, err := q.search(fctx, params, window)
		if err != nil {
			return nil, err
		}
		q.cache.StorePage(fctx, signature, params.Page, page)
		return page, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*ListingPage), nil
	case <-ctx.Done():
		return nil, errs.Persistence(ctx.Err())
	}
}

func (q *listingQueriesImpl) flightContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if q.flightTTL <= 0 {
		return detached, func() {}
	}
	return context.WithTimeout(detached, q.flightTTL)
}

func (q *listingQueriesImpl) search(ctx context.Context, params SearchParams, window availability.Bounds) (*ListingPage, error) {
	items, err := q.dwellings.ListForSearch(ctx, params.AreaID)
	if err != nil {
		return nil, errs.Persistence(err)
	}

	if !window.IsZero() && len(items) > 0 {
		ids := make([]uuid.UUID, len(items))
		for i, it := range items {
			ids[i] = it.ID
		}
		bookings, err := q.reservations.ListBlockingWithin(ctx, ids, window)
		if err != nil {
			return nil, errs.Persistence(err)
		}
		excluded := availability.ExcludeConflicting(ids, window, bookings)
		items = slices.DeleteFunc(items, func(it DwellingListItem) bool {
			_, ok := excluded[it.ID]
			return ok
		})
	}

	sortListings(items, params.Sort)
	return paginate(items, params.Page, q.pageSize), nil
}

func sortListings(items []DwellingListItem, key SortKey) {
	newest := func(a, b DwellingListItem) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	}

	slices.SortStableFunc(items, func(a, b DwellingListItem) int {
		var c int
		switch key {
		case SortBooking:
			c = cmp.Compare(b.BookingCount, a.BookingCount)
		case SortPriceInc:
			c = cmp.Compare(a.NightlyRate, b.NightlyRate)
		case SortPriceDes:
			c = cmp.Compare(b.NightlyRate, a.NightlyRate)
		}
		if c != 0 {
			return c
		}
		return newest(a, b)
	})
}

// paginate returns an empty page, not an error, past the last page.
func paginate(items []DwellingListItem, page, size int) *ListingPage {
	total := (len(items) + size - 1) / size
	out := &ListingPage{Listings: []DwellingListItem{}, Page: page, TotalPages: total}

	if page > total {
		return out
	}
	start := (page - 1) * size
	end := min(start+size, len(items))
	out.Listings = append(out.Listings, items[start:end]...)
	return out
}

func (q *listingQueriesImpl) ListNewest(ctx context.Context) ([]DwellingListItem, error) {
	items, err := q.dwellings.ListNewest(ctx, q.indexLimit)
	if err != nil {
		return nil, errs.Persistence(err)
	}
	return items, nil
}

func (q *listingQueriesImpl) GetDwelling(ctx context.Context, id uuid.UUID) (*DwellingDetailView, error) {
	view, err := q.dwellings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.DwellingNotFound(id)
		}
		return nil, errs.Persistence(err)
	}
	return view, nil
}

func (q *listingQueriesImpl) ListOwnDwellings(ctx context.Context, ownerID uuid.UUID) ([]DwellingListItem, error) {
	items, err := q.dwellings.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Persistence(err)
	}
	return items, nil
}
