package queries

//go:generate mockgen -source=$GOFILE -destination=../../testutil/mock/queries/ports.go -package=queriesmock

import (
	"context"

	"staybook/internal/domain/availability"

	"github.com/google/uuid"
)

type DwellingReadStore interface {
	// ListForSearch returns every dwelling, or those in one area when areaID is set.
	ListForSearch(ctx context.Context, areaID *int) ([]DwellingListItem, error)
	ListNewest(ctx context.Context, limit int) ([]DwellingListItem, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]DwellingListItem, error)
	ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*DwellingDetailView, error)
}

type ReservationReadStore interface {
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*ReservationView, error)
	ListByDwellings(ctx context.Context, dwellingIDs []uuid.UUID) ([]*ReservationView, error)
	// ListBlockingWithin prefilters blocking bookings on dwellingIDs that may touch window.
	ListBlockingWithin(ctx context.Context, dwellingIDs []uuid.UUID, window availability.Bounds) ([]availability.Booking, error)
}

type AreaReadStore interface {
	List(ctx context.Context) ([]AreaView, error)
}
