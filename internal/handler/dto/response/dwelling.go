package response

import (
	"time"

	"staybook/internal/domain/dwelling"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type DwellingResponse struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	AreaID       int       `json:"area_id"`
	Title        string    `json:"title"`
	Address      string    `json:"address"`
	NightlyRate  int64     `json:"nightly_rate"`
	Deposit      int64     `json:"deposit"`
	RoomCount    int       `json:"room_count"`
	Capacity     int       `json:"capacity"`
	Beds         int       `json:"beds"`
	MinNights    int       `json:"min_nights"`
	MaxNights    int       `json:"max_nights"`
	BookingCount int       `json:"booking_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromDwelling(d *dwelling.Dwelling) *DwellingResponse {
	det := d.Details()
	return &DwellingResponse{
		ID:           d.ID(),
		OwnerID:      d.OwnerID(),
		AreaID:       det.AreaID,
		Title:        det.Title,
		Address:      det.Address,
		NightlyRate:  det.NightlyRate.Minor(),
		Deposit:      det.Deposit.Minor(),
		RoomCount:    det.RoomCount,
		Capacity:     det.Capacity,
		Beds:         det.Beds,
		MinNights:    det.MinNights,
		MaxNights:    det.MaxNights,
		BookingCount: d.BookingCount(),
		CreatedAt:    d.CreatedAt(),
	}
}

type DwellingListResponse struct {
	Dwellings []queries.DwellingListItem `json:"dwellings"`
}

type AreaListResponse struct {
	Areas []queries.AreaView `json:"areas"`
}
