// Package availability decides whether dates can be booked. It performs no I/O:
// callers load the existing bookings and pass them in.
package availability

import (
	"time"

	"staybook/internal/domain/reservation"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

type Verdict uint8

const (
	Available Verdict = iota + 1
	Conflict
)

func (v Verdict) String() string {
	switch v {
	case Available:
		return "AVAILABLE"
	case Conflict:
		return "CONFLICT"
	default:
		return "UNKNOWN"
	}
}

// Booking is an existing reservation interval [CheckIn, CheckOut) on a dwelling.
type Booking struct {
	DwellingID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Status     reservation.Status
}

// Bounds is a search window where either side may be absent.
type Bounds struct {
	CheckIn  *time.Time
	CheckOut *time.Time
}

func NewBounds(checkIn, checkOut *time.Time) (Bounds, error) {
	var b Bounds
	if checkIn != nil {
		in := reservation.CalendarDate(*checkIn)
		b.CheckIn = &in
	}
	if checkOut != nil {
		out := reservation.CalendarDate(*checkOut)
		b.CheckOut = &out
	}
	if b.CheckIn != nil && b.CheckOut != nil && !b.CheckIn.Before(*b.CheckOut) {
		return Bounds{}, errs.ConflictInput("check_out", "check_out must be after check_in")
	}
	return b, nil
}

func BoundsOf(stay reservation.Stay) Bounds {
	in, out := stay.CheckIn(), stay.CheckOut()
	return Bounds{CheckIn: &in, CheckOut: &out}
}

func (b Bounds) IsZero() bool {
	return b.CheckIn == nil && b.CheckOut == nil
}

// Blocks reports whether bk occupies any part of the window. Rejected bookings never block.
func (b Bounds) Blocks(bk Booking) bool {
	if !bk.Status.Blocking() {
		return false
	}
	switch {
	case b.CheckIn != nil && b.CheckOut != nil:
		return b.CheckIn.Before(bk.CheckOut) && bk.CheckIn.Before(*b.CheckOut)
	case b.CheckIn != nil:
		return bk.CheckOut.After(*b.CheckIn)
	case b.CheckOut != nil:
		return bk.CheckIn.Before(*b.CheckOut)
	default:
		return false
	}
}

// Resolve checks a candidate stay on one dwelling against its existing bookings.
// Bookings for other dwellings are ignored.
func Resolve(dwellingID uuid.UUID, candidate reservation.Stay, existing []Booking) Verdict {
	window := BoundsOf(candidate)
	for _, bk := range existing {
		if bk.DwellingID != dwellingID {
			continue
		}
		if window.Blocks(bk) {
			return Conflict
		}
	}
	return Available
}

// ExcludeConflicting returns the subset of dwellingIDs that have a blocking booking
// inside the window. A zero window excludes nothing.
func ExcludeConflicting(dwellingIDs []uuid.UUID, window Bounds, existing []Booking) map[uuid.UUID]struct{} {
	excluded := make(map[uuid.UUID]struct{})
	if window.IsZero() || len(dwellingIDs) == 0 {
		return excluded
	}

	candidates := make(map[uuid.UUID]struct{}, len(dwellingIDs))
	for _, id := range dwellingIDs {
		candidates[id] = struct{}{}
	}
	for _, bk := range existing {
		if _, ok := candidates[bk.DwellingID]; !ok {
			continue
		}
		if window.Blocks(bk) {
			excluded[bk.DwellingID] = struct{}{}
		}
	}
	return excluded
}
