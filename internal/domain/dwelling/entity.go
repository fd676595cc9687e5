package dwelling

import (
	"strings"
	"time"

	"staybook/internal/domain/money"
	"staybook/internal/domain/reservation"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

const maxTitleLength = 120

// Details are the host-supplied attributes of a listing.
type Details struct {
	Title       string
	AreaID      int
	Address     string
	NightlyRate money.Amount
	Deposit     money.Amount
	RoomCount   int
	Capacity    int
	Beds        int
	MinNights   int
	MaxNights   int // zero means no upper bound
}

func (d Details) validate() error {
	switch {
	case strings.TrimSpace(d.Title) == "":
		return errs.InvalidInput("title", "title is required")
	case len([]rune(d.Title)) > maxTitleLength:
		return errs.InvalidInput("title", "title is too long")
	case strings.TrimSpace(d.Address) == "":
		return errs.InvalidInput("address", "address is required")
	case d.AreaID <= 0:
		return errs.InvalidInput("area_id", "area is required")
	case !d.NightlyRate.IsPositive():
		return errs.InvalidInput("nightly_rate", "nightly rate must be positive")
	case d.Deposit < 0:
		return errs.InvalidInput("deposit", "deposit cannot be negative")
	case d.RoomCount < 1:
		return errs.InvalidInput("room_count", "at least one room is required")
	case d.Capacity < 1:
		return errs.InvalidInput("capacity", "capacity must be at least one guest")
	case d.Beds < 0:
		return errs.InvalidInput("beds", "beds cannot be negative")
	case d.MinNights < 1:
		return errs.InvalidInput("min_nights", "minimum stay must be at least one night")
	case d.MaxNights != 0 && d.MaxNights < d.MinNights:
		return errs.InvalidInput("max_nights", "maximum stay cannot be shorter than the minimum")
	}
	return nil
}

type Dwelling struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	details      Details
	bookingCount int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewDwelling(ownerID uuid.UUID, details Details, now time.Time) (*Dwelling, error) {
	details.Title = strings.TrimSpace(details.Title)
	details.Address = strings.TrimSpace(details.Address)
	if err := details.validate(); err != nil {
		return nil, err
	}
	return &Dwelling{
		id:        uuid.New(),
		ownerID:   ownerID,
		details:   details,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructDwelling(id, ownerID uuid.UUID, details Details, bookingCount int, createdAt, updatedAt time.Time) *Dwelling {
	return &Dwelling{
		id:           id,
		ownerID:      ownerID,
		details:      details,
		bookingCount: bookingCount,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (d *Dwelling) IsOwnedBy(accountID uuid.UUID) bool {
	return d.ownerID == accountID
}

// ReservationSpec exposes what a new reservation copies from this dwelling.
func (d *Dwelling) ReservationSpec() reservation.DwellingSpec {
	return reservation.DwellingSpec{
		ID:          d.id,
		OwnerID:     d.ownerID,
		NightlyRate: d.details.NightlyRate,
		MinNights:   d.details.MinNights,
		MaxNights:   d.details.MaxNights,
	}
}

func (d *Dwelling) ID() uuid.UUID             { return d.id }
func (d *Dwelling) OwnerID() uuid.UUID        { return d.ownerID }
func (d *Dwelling) Details() Details          { return d.details }
func (d *Dwelling) NightlyRate() money.Amount { return d.details.NightlyRate }
func (d *Dwelling) BookingCount() int         { return d.bookingCount }
func (d *Dwelling) CreatedAt() time.Time      { return d.createdAt }
func (d *Dwelling) UpdatedAt() time.Time      { return d.updatedAt }
