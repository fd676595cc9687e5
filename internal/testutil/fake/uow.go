//go:build unit || e2e

package fake

import (
	"context"
	"maps"
	"slices"
	"sync"

	"staybook/internal/domain/availability"
	"staybook/internal/domain/dwelling"
	"staybook/internal/domain/reservation"
	"staybook/internal/infra"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

// UnitOfWork runs transactions against an in-memory state. Transactions are
// serialized and their writes become visible only when fn returns nil.
type UnitOfWork struct {
	mu      sync.Mutex
	state   state
	commits int

	// FailOn, when set, is consulted before each repository call with the call's
	// name (for example "Reservations.Insert"); a non-nil result is returned as the
	// call's error.
	FailOn func(op string) error
}

type state struct {
	areas        map[int]struct{}
	accounts     map[uuid.UUID]struct{}
	dwellings    map[uuid.UUID]*dwelling.Dwelling
	reservations map[uuid.UUID]*reservation.Reservation
}

func NewUnitOfWork(areaIDs ...int) *UnitOfWork {
	u := &UnitOfWork{state: state{
		areas:        map[int]struct{}{},
		accounts:     map[uuid.UUID]struct{}{},
		dwellings:    map[uuid.UUID]*dwelling.Dwelling{},
		reservations: map[uuid.UUID]*reservation.Reservation{},
	}}
	for _, id := range areaIDs {
		u.state.areas[id] = struct{}{}
	}
	return u
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	staged := u.state.clone()
	if err := fn(ctx, &tx{uow: u, s: &staged}); err != nil {
		return err
	}
	u.state = staged
	u.commits++
	return nil
}

func (u *UnitOfWork) SeedDwelling(d *dwelling.Dwelling) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.areas[d.Details().AreaID] = struct{}{}
	u.state.accounts[d.OwnerID()] = struct{}{}
	u.state.dwellings[d.ID()] = cloneDwelling(d)
}

func (u *UnitOfWork) SeedReservation(r *reservation.Reservation) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.accounts[r.GuestID()] = struct{}{}
	u.state.reservations[r.ID()] = cloneReservation(r)
}

func (u *UnitOfWork) Dwelling(id uuid.UUID) (*dwelling.Dwelling, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	d, ok := u.state.dwellings[id]
	if !ok {
		return nil, false
	}
	return cloneDwelling(d), true
}

func (u *UnitOfWork) Reservation(id uuid.UUID) (*reservation.Reservation, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	r, ok := u.state.reservations[id]
	if !ok {
		return nil, false
	}
	return cloneReservation(r), true
}

func (u *UnitOfWork) ReservationCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.state.reservations)
}

func (u *UnitOfWork) HasAccount(id uuid.UUID) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	_, ok := u.state.accounts[id]
	return ok
}

func (u *UnitOfWork) Commits() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.commits
}

func (s state) clone() state {
	c := state{
		areas:        maps.Clone(s.areas),
		accounts:     maps.Clone(s.accounts),
		dwellings:    make(map[uuid.UUID]*dwelling.Dwelling, len(s.dwellings)),
		reservations: make(map[uuid.UUID]*reservation.Reservation, len(s.reservations)),
	}
	for id, d := range s.dwellings {
		c.dwellings[id] = cloneDwelling(d)
	}
	for id, r := range s.reservations {
		c.reservations[id] = cloneReservation(r)
	}
	return c
}

func cloneDwelling(d *dwelling.Dwelling) *dwelling.Dwelling {
	return dwelling.ReconstructDwelling(d.ID(), d.OwnerID(), d.Details(), d.BookingCount(), d.CreatedAt(), d.UpdatedAt())
}

func cloneReservation(r *reservation.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID(), r.DwellingID(), r.GuestID(), r.Stay(),
		r.NightlyRate(), r.TotalAmount(), r.Status(),
		r.DecisionReason(), r.CommentText(),
		r.CreatedAt(), r.UpdatedAt(),
	)
}

type tx struct {
	uow *UnitOfWork
	s   *state
}

func (t *tx) fail(op string) error {
	if t.uow.FailOn == nil {
		return nil
	}
	return t.uow.FailOn(op)
}

func (t *tx) Accounts() shared.AccountRepository         { return accountRepo{t} }
func (t *tx) Dwellings() shared.DwellingRepository       { return dwellingRepo{t} }
func (t *tx) Reservations() shared.ReservationRepository { return reservationRepo{t} }

type accountRepo struct{ t *tx }

func (r accountRepo) Ensure(_ context.Context, accountID uuid.UUID) error {
	if err := r.t.fail("Accounts.Ensure"); err != nil {
		return err
	}
	r.t.s.accounts[accountID] = struct{}{}
	return nil
}

type dwellingRepo struct{ t *tx }

func (r dwellingRepo) Create(_ context.Context, d *dwelling.Dwelling) error {
	if err := r.t.fail("Dwellings.Create"); err != nil {
		return err
	}
	if _, ok := r.t.s.areas[d.Details().AreaID]; !ok {
		return infra.WrapRepoErr("failed to create dwelling", nil, infra.KindForeignKeyViolated)
	}
	r.t.s.dwellings[d.ID()] = cloneDwelling(d)
	return nil
}

func (r dwellingRepo) LockByID(_ context.Context, id uuid.UUID) (*dwelling.Dwelling, error) {
	if err := r.t.fail("Dwellings.LockByID"); err != nil {
		return nil, err
	}
	d, ok := r.t.s.dwellings[id]
	if !ok {
		return nil, infra.WrapRepoErr("failed to lock dwelling", nil, infra.KindNotFound)
	}
	return cloneDwelling(d), nil
}

func (r dwellingRepo) IncrementBookingCount(_ context.Context, id uuid.UUID) error {
	if err := r.t.fail("Dwellings.IncrementBookingCount"); err != nil {
		return err
	}
	d, ok := r.t.s.dwellings[id]
	if !ok {
		return infra.WrapRepoErr("failed to increment booking count", nil, infra.KindNotFound)
	}
	r.t.s.dwellings[id] = dwelling.ReconstructDwelling(d.ID(), d.OwnerID(), d.Details(), d.BookingCount()+1, d.CreatedAt(), d.UpdatedAt())
	return nil
}

type reservationRepo struct{ t *tx }

func (r reservationRepo) ListForDwelling(_ context.Context, dwellingID uuid.UUID, statuses []reservation.Status) ([]availability.Booking, error) {
	if err := r.t.fail("Reservations.ListForDwelling"); err != nil {
		return nil, err
	}
	var out []availability.Booking
	for _, res := range r.t.s.reservations {
		if res.DwellingID() != dwellingID || !slices.Contains(statuses, res.Status()) {
			continue
		}
		out = append(out, bookingOf(res))
	}
	return out, nil
}

// Insert rejects overlapping non-rejected stays on the same dwelling, like the
// table's exclusion constraint.
func (r reservationRepo) Insert(_ context.Context, res *reservation.Reservation) error {
	if err := r.t.fail("Reservations.Insert"); err != nil {
		return err
	}
	if _, ok := r.t.s.dwellings[res.DwellingID()]; !ok {
		return infra.WrapRepoErr("failed to insert reservation", nil, infra.KindForeignKeyViolated)
	}
	for _, other := range r.t.s.reservations {
		if other.DwellingID() == res.DwellingID() && other.Status() != reservation.StatusRejected && other.Stay().Overlaps(res.Stay()) {
			return infra.WrapRepoErr("failed to insert reservation", nil, infra.KindExclusionViolated)
		}
	}
	r.t.s.reservations[res.ID()] = cloneReservation(res)
	return nil
}

func (r reservationRepo) LockByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	if err := r.t.fail("Reservations.LockByID"); err != nil {
		return nil, err
	}
	res, ok := r.t.s.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("failed to lock reservation", nil, infra.KindNotFound)
	}
	return cloneReservation(res), nil
}

func (r reservationRepo) UpdateStatus(_ context.Context, res *reservation.Reservation, from reservation.Status) error {
	if err := r.t.fail("Reservations.UpdateStatus"); err != nil {
		return err
	}
	stored, ok := r.t.s.reservations[res.ID()]
	if !ok || stored.Status() != from {
		return infra.WrapRepoErr("failed to update reservation status", nil, infra.KindStaleWrite)
	}
	r.t.s.reservations[res.ID()] = cloneReservation(res)
	return nil
}

func bookingOf(r *reservation.Reservation) availability.Booking {
	return availability.Booking{
		DwellingID: r.DwellingID(),
		CheckIn:    r.Stay().CheckIn(),
		CheckOut:   r.Stay().CheckOut(),
		Status:     r.Status(),
	}
}
