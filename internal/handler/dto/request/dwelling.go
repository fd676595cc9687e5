package request

import (
	"strconv"
	"strings"
	"time"

	"staybook/internal/domain/dwelling"
	"staybook/internal/domain/money"
	"staybook/internal/domain/reservation"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/queries"
)

type PublishDwellingRequest struct {
	Title       string `json:"title" binding:"required"`
	AreaID      int    `json:"area_id" binding:"required"`
	Address     string `json:"address" binding:"required"`
	NightlyRate int64  `json:"nightly_rate" binding:"required"`
	Deposit     int64  `json:"deposit"`
	RoomCount   int    `json:"room_count" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required"`
	Beds        int    `json:"beds"`
	MinNights   int    `json:"min_nights"`
	MaxNights   int    `json:"max_nights"`
}

func (r PublishDwellingRequest) ToDomain() dwelling.Details {
	minNights := r.MinNights
	if minNights == 0 {
		minNights = 1
	}
	return dwelling.Details{
		Title:       r.Title,
		AreaID:      r.AreaID,
		Address:     r.Address,
		NightlyRate: money.Amount(r.NightlyRate),
		Deposit:     money.Amount(r.Deposit),
		RoomCount:   r.RoomCount,
		Capacity:    r.Capacity,
		Beds:        r.Beds,
		MinNights:   minNights,
		MaxNights:   r.MaxNights,
	}
}

// SearchQuery is the query string of a listing search.
type SearchQuery struct {
	AreaID   string `form:"aid"`
	CheckIn  string `form:"sd"`
	CheckOut string `form:"ed"`
	Sort     string `form:"sk"`
	Page     string `form:"p"`
}

func (q SearchQuery) ToParams() (queries.SearchParams, error) {
	params := queries.SearchParams{Sort: queries.ParseSortKey(q.Sort), Page: 1}

	if v := strings.TrimSpace(q.AreaID); v != "" {
		aid, err := strconv.Atoi(v)
		if err != nil {
			return queries.SearchParams{}, errs.InvalidInput("aid", "area id must be an integer")
		}
		params.AreaID = &aid
	}

	if v := strings.TrimSpace(q.Page); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return queries.SearchParams{}, errs.InvalidInput("p", "page must be an integer")
		}
		params.Page = p
	}

	var err error
	if params.CheckIn, err = optionalDate("sd", q.CheckIn); err != nil {
		return queries.SearchParams{}, err
	}
	if params.CheckOut, err = optionalDate("ed", q.CheckOut); err != nil {
		return queries.SearchParams{}, err
	}
	return params, nil
}

func optionalDate(field, v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := reservation.ParseDate(field, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
