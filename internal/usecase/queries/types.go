package queries

import (
	"time"

	"staybook/internal/domain/reservation"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID             uuid.UUID          `json:"id"`
	DwellingID     uuid.UUID          `json:"dwelling_id"`
	DwellingTitle  string             `json:"dwelling_title"`
	HostID         uuid.UUID          `json:"host_id"`
	GuestID        uuid.UUID          `json:"guest_id"`
	CheckIn        time.Time          `json:"check_in"`
	CheckOut       time.Time          `json:"check_out"`
	Nights         int                `json:"nights"`
	NightlyRate    int64              `json:"nightly_rate"`
	TotalAmount    int64              `json:"total_amount"`
	Status         reservation.Status `json:"status"`
	DecisionReason *string            `json:"decision_reason,omitempty"`
	Comment        *string            `json:"comment,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// DwellingListItem is one row of a search or index listing; it is also the cached shape.
type DwellingListItem struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	AreaID       int       `json:"area_id"`
	AreaName     string    `json:"area_name"`
	Title        string    `json:"title"`
	Address      string    `json:"address"`
	NightlyRate  int64     `json:"nightly_rate"`
	RoomCount    int       `json:"room_count"`
	Capacity     int       `json:"capacity"`
	BookingCount int       `json:"booking_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type DwellingDetailView struct {
	DwellingListItem
	Deposit   int64     `json:"deposit"`
	Beds      int       `json:"beds"`
	MinNights int       `json:"min_nights"`
	MaxNights int       `json:"max_nights"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AreaView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ListingPage struct {
	Listings   []DwellingListItem `json:"listings"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
}
