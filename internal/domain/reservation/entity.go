package reservation

import (
	"fmt"
	"strings"
	"time"

	"staybook/internal/domain/money"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

// DwellingSpec is the slice of a dwelling a new reservation depends on.
type DwellingSpec struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	NightlyRate money.Amount
	MinNights   int
	MaxNights   int
}

type Reservation struct {
	id             uuid.UUID
	dwellingID     uuid.UUID
	guestID        uuid.UUID
	stay           Stay
	nightlyRate    money.Amount
	totalAmount    money.Amount
	status         Status
	decisionReason string
	comment        string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewReservation(spec DwellingSpec, guestID uuid.UUID, stay Stay, now time.Time) (*Reservation, error) {
	if guestID == spec.OwnerID {
		return nil, errs.Forbidden(spec.ID, "hosts cannot reserve their own dwelling")
	}
	if !spec.NightlyRate.IsPositive() {
		return nil, errs.InvalidInput("nightly_rate", "dwelling has no bookable rate")
	}

	nights := stay.Nights()
	if spec.MinNights > 0 && nights < spec.MinNights {
		return nil, errs.ConflictInput("check_out", fmt.Sprintf("stay must be at least %d nights", spec.MinNights))
	}
	if spec.MaxNights > 0 && nights > spec.MaxNights {
		return nil, errs.ConflictInput("check_out", fmt.Sprintf("stay must be at most %d nights", spec.MaxNights))
	}

	return &Reservation{
		id:          uuid.New(),
		dwellingID:  spec.ID,
		guestID:     guestID,
		stay:        stay,
		nightlyRate: spec.NightlyRate,
		totalAmount: spec.NightlyRate.Times(nights),
		status:      StatusAwaitingDecision,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructReservation(
	id, dwellingID, guestID uuid.UUID,
	stay Stay,
	nightlyRate, totalAmount money.Amount,
	status Status,
	decisionReason, comment string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:             id,
		dwellingID:     dwellingID,
		guestID:        guestID,
		stay:           stay,
		nightlyRate:    nightlyRate,
		totalAmount:    totalAmount,
		status:         status,
		decisionReason: decisionReason,
		comment:        comment,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Decide applies the host's decision. The status is left untouched on error.
func (r *Reservation) Decide(action Action, reason string, now time.Time) error {
	if r.status != StatusAwaitingDecision {
		return errs.InvalidTransition(r.id, r.status.String(), "a decision is only possible while AWAITING_DECISION")
	}

	switch action {
	case ActionAccept:
		r.status = StatusAwaitingReview
	case ActionReject:
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return errs.InvalidInput("reason", "a rejection requires a reason")
		}
		r.decisionReason = reason
		r.status = StatusRejected
	default:
		return errs.InvalidInput("action", "unknown decision")
	}
	r.updatedAt = now
	return nil
}

// Comment records the guest's feedback and completes the reservation.
func (r *Reservation) Comment(text string, now time.Time) error {
	if r.status != StatusAwaitingReview {
		return errs.InvalidTransition(r.id, r.status.String(), "a comment is only possible while AWAITING_REVIEW")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return errs.InvalidInput("comment", "comment cannot be empty")
	}
	r.comment = text
	r.status = StatusCompleted
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsGuest(accountID uuid.UUID) bool {
	return r.guestID == accountID
}

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) DwellingID() uuid.UUID     { return r.dwellingID }
func (r *Reservation) GuestID() uuid.UUID        { return r.guestID }
func (r *Reservation) Stay() Stay                { return r.stay }
func (r *Reservation) Nights() int               { return r.stay.Nights() }
func (r *Reservation) NightlyRate() money.Amount { return r.nightlyRate }
func (r *Reservation) TotalAmount() money.Amount { return r.totalAmount }
func (r *Reservation) Status() Status            { return r.status }
func (r *Reservation) DecisionReason() string    { return r.decisionReason }
func (r *Reservation) CommentText() string       { return r.comment }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time      { return r.updatedAt }
