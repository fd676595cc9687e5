//go:build unit || e2e

package builder

import (
	"time"

	"staybook/internal/domain/dwelling"
	"staybook/internal/domain/money"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type DwellingBuilder struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	Address      string
	AreaID       int
	AreaName     string
	NightlyRate  int64
	Deposit      int64
	RoomCount    int
	Capacity     int
	Beds         int
	MinNights    int
	MaxNights    int
	BookingCount int
	CreatedAt    time.Time
}

func NewDwellingBuilder() *DwellingBuilder {
	return &DwellingBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Title:       "Quiet loft by the river",
		Address:     "12 Water Lane",
		AreaID:      1,
		AreaName:    "Old Town",
		NightlyRate: 10000,
		Deposit:     5000,
		RoomCount:   2,
		Capacity:    3,
		Beds:        2,
		MinNights:   1,
		MaxNights:   0,
		CreatedAt:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (b *DwellingBuilder) With(mutate func(*DwellingBuilder)) *DwellingBuilder {
	mutate(b)
	return b
}

func (b *DwellingBuilder) Details() dwelling.Details {
	return dwelling.Details{
		Title:       b.Title,
		AreaID:      b.AreaID,
		Address:     b.Address,
		NightlyRate: money.Amount(b.NightlyRate),
		Deposit:     money.Amount(b.Deposit),
		RoomCount:   b.RoomCount,
		Capacity:    b.Capacity,
		Beds:        b.Beds,
		MinNights:   b.MinNights,
		MaxNights:   b.MaxNights,
	}
}

// Build methods
func (b *DwellingBuilder) BuildDomain() (*dwelling.Dwelling, error) {
	return dwelling.NewDwelling(b.OwnerID, b.Details(), b.CreatedAt)
}

func (b *DwellingBuilder) BuildReconstructed() *dwelling.Dwelling {
	return dwelling.ReconstructDwelling(b.ID, b.OwnerID, b.Details(), b.BookingCount, b.CreatedAt, b.CreatedAt)
}

func (b *DwellingBuilder) BuildListItem() queries.DwellingListItem {
	return queries.DwellingListItem{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		AreaID:       b.AreaID,
		AreaName:     b.AreaName,
		Title:        b.Title,
		Address:      b.Address,
		NightlyRate:  b.NightlyRate,
		RoomCount:    b.RoomCount,
		Capacity:     b.Capacity,
		BookingCount: b.BookingCount,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *DwellingBuilder) BuildDetailView() *queries.DwellingDetailView {
	return &queries.DwellingDetailView{
		DwellingListItem: b.BuildListItem(),
		Deposit:          b.Deposit,
		Beds:             b.Beds,
		MinNights:        b.MinNights,
		MaxNights:        b.MaxNights,
		UpdatedAt:        b.CreatedAt,
	}
}

func (b *DwellingBuilder) BuildPublishRequestDTO() reqdto.PublishDwellingRequest {
	return reqdto.PublishDwellingRequest{
		Title:       b.Title,
		AreaID:      b.AreaID,
		Address:     b.Address,
		NightlyRate: b.NightlyRate,
		Deposit:     b.Deposit,
		RoomCount:   b.RoomCount,
		Capacity:    b.Capacity,
		Beds:        b.Beds,
		MinNights:   b.MinNights,
		MaxNights:   b.MaxNights,
	}
}
