package response

import (
	"time"

	"staybook/internal/domain/reservation"
	"staybook/internal/pkg/ptr"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID             uuid.UUID  `json:"id"`
	DwellingID     uuid.UUID  `json:"dwelling_id"`
	DwellingTitle  string     `json:"dwelling_title,omitempty"`
	HostID         *uuid.UUID `json:"host_id,omitempty"`
	GuestID        uuid.UUID  `json:"guest_id"`
	CheckIn        string     `json:"check_in"`
	CheckOut       string     `json:"check_out"`
	Nights         int        `json:"nights"`
	NightlyRate    int64      `json:"nightly_rate"`
	TotalAmount    int64      `json:"total_amount"`
	Status         string     `json:"status"`
	DecisionReason *string    `json:"decision_reason,omitempty"`
	Comment        *string    `json:"comment,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:             r.ID(),
		DwellingID:     r.DwellingID(),
		GuestID:        r.GuestID(),
		CheckIn:        r.Stay().CheckIn().Format(reservation.DateLayout),
		CheckOut:       r.Stay().CheckOut().Format(reservation.DateLayout),
		Nights:         r.Nights(),
		NightlyRate:    r.NightlyRate().Minor(),
		TotalAmount:    r.TotalAmount().Minor(),
		Status:         r.Status().String(),
		DecisionReason: ptr.NonEmpty(r.DecisionReason()),
		Comment:        ptr.NonEmpty(r.CommentText()),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:             v.ID,
		DwellingID:     v.DwellingID,
		DwellingTitle:  v.DwellingTitle,
		HostID:         ptr.To(v.HostID),
		GuestID:        v.GuestID,
		CheckIn:        v.CheckIn.Format(reservation.DateLayout),
		CheckOut:       v.CheckOut.Format(reservation.DateLayout),
		Nights:         v.Nights,
		NightlyRate:    v.NightlyRate,
		TotalAmount:    v.TotalAmount,
		Status:         v.Status.String(),
		DecisionReason: v.DecisionReason,
		Comment:        v.Comment,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
}

func FromReservationViews(views []*queries.ReservationView) *ReservationListResponse {
	out := make([]*ReservationResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationView(v)
	}
	return &ReservationListResponse{Reservations: out}
}
