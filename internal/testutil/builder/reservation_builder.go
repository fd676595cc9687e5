//go:build unit || e2e

package builder

import (
	"time"

	"staybook/internal/domain/money"
	"staybook/internal/domain/reservation"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID             uuid.UUID
	DwellingID     uuid.UUID
	DwellingTitle  string
	OwnerID        uuid.UUID
	GuestID        uuid.UUID
	CheckIn        time.Time
	CheckOut       time.Time
	NightlyRate    int64
	MinNights      int
	MaxNights      int
	Status         reservation.Status
	DecisionReason string
	Comment        string
	CreatedAt      time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:            uuid.New(),
		DwellingID:    uuid.New(),
		DwellingTitle: "Quiet loft by the river",
		OwnerID:       uuid.New(),
		GuestID:       uuid.New(),
		CheckIn:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		NightlyRate:   10000,
		MinNights:     1,
		MaxNights:     0,
		Status:        reservation.StatusAwaitingDecision,
		CreatedAt:     time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Spec() reservation.DwellingSpec {
	return reservation.DwellingSpec{
		ID:          b.DwellingID,
		OwnerID:     b.OwnerID,
		NightlyRate: money.Amount(b.NightlyRate),
		MinNights:   b.MinNights,
		MaxNights:   b.MaxNights,
	}
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	stay, err := reservation.NewStay(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(b.Spec(), b.GuestID, stay, b.CreatedAt)
}

// BuildReconstructed skips creation guards, for tests that start from a stored state.
func (b *ReservationBuilder) BuildReconstructed() *reservation.Reservation {
	stay, err := reservation.NewStay(b.CheckIn, b.CheckOut)
	if err != nil {
		panic("builder: invalid stay: " + err.Error())
	}
	rate := money.Amount(b.NightlyRate)
	return reservation.ReconstructReservation(
		b.ID, b.DwellingID, b.GuestID, stay,
		rate, rate.Times(stay.Nights()), b.Status,
		b.DecisionReason, b.Comment,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	r := b.BuildReconstructed()
	view := &queries.ReservationView{
		ID:            r.ID(),
		DwellingID:    r.DwellingID(),
		DwellingTitle: b.DwellingTitle,
		HostID:        b.OwnerID,
		GuestID:       r.GuestID(),
		CheckIn:       r.Stay().CheckIn(),
		CheckOut:      r.Stay().CheckOut(),
		Nights:        r.Nights(),
		NightlyRate:   r.NightlyRate().Minor(),
		TotalAmount:   r.TotalAmount().Minor(),
		Status:        r.Status(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
	if b.DecisionReason != "" {
		view.DecisionReason = &b.DecisionReason
	}
	if b.Comment != "" {
		view.Comment = &b.Comment
	}
	return view
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		DwellingID: b.DwellingID,
		CheckIn:    b.CheckIn.Format(reservation.DateLayout),
		CheckOut:   b.CheckOut.Format(reservation.DateLayout),
	}
}
