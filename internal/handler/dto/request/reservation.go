package request

import (
	"staybook/internal/domain/reservation"
	"staybook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	DwellingID uuid.UUID `json:"dwelling_id" binding:"required"`
	CheckIn    string    `json:"check_in" binding:"required"`
	CheckOut   string    `json:"check_out" binding:"required"`
}

// ToCommand parses the calendar dates; a malformed date is a conflicting date input.
func (r CreateReservationRequest) ToCommand() (commands.CreateReservationRequest, error) {
	checkIn, err := reservation.ParseDate("check_in", r.CheckIn)
	if err != nil {
		return commands.CreateReservationRequest{}, err
	}
	checkOut, err := reservation.ParseDate("check_out", r.CheckOut)
	if err != nil {
		return commands.CreateReservationRequest{}, err
	}
	return commands.CreateReservationRequest{
		DwellingID: r.DwellingID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}, nil
}

type DecideReservationRequest struct {
	Action string `json:"action" binding:"required"`
	Reason string `json:"reason" binding:"max=500"`
}

func (r DecideReservationRequest) ToCommand() commands.DecideReservationRequest {
	return commands.DecideReservationRequest{Action: r.Action, Reason: r.Reason}
}

type CommentReservationRequest struct {
	Comment string `json:"comment" binding:"max=1000"`
}
