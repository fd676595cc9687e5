package shared

import (
	"context"

	"staybook/internal/domain/availability"
	"staybook/internal/domain/dwelling"
	"staybook/internal/domain/reservation"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic.
	// fn may run more than once; it must not have effects outside tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Accounts() AccountRepository
	Dwellings() DwellingRepository
	Reservations() ReservationRepository
}

type AccountRepository interface {
	// Ensure records an externally authenticated account the first time it is seen.
	Ensure(ctx context.Context, accountID uuid.UUID) error
}

type DwellingRepository interface {
	Create(ctx context.Context, d *dwelling.Dwelling) error
	// LockByID loads the dwelling and holds its row lock until the transaction ends.
	// Writers that read a dwelling's reservations take it before reading them.
	LockByID(ctx context.Context, id uuid.UUID) (*dwelling.Dwelling, error)
	IncrementBookingCount(ctx context.Context, id uuid.UUID) error
}

type ReservationRepository interface {
	ListForDwelling(ctx context.Context, dwellingID uuid.UUID, statuses []reservation.Status) ([]availability.Booking, error)
	Insert(ctx context.Context, r *reservation.Reservation) error
	LockByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// UpdateStatus persists status, reason and comment, guarded on the previous status.
	UpdateStatus(ctx context.Context, r *reservation.Reservation, from reservation.Status) error
}
