package commands

//go:generate mockgen -source=$GOFILE -destination=../../testutil/mock/commands/ports.go -package=commandsmock

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SearchInvalidator drops cached listing pages. It never fails the caller.
type SearchInvalidator interface {
	InvalidateSearch(ctx context.Context)
}

type CreateReservationRequest struct {
	DwellingID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
}

type DecideReservationRequest struct {
	Action string
	Reason string
}
