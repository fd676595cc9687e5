//go:build e2e

package readstore_test

import (
	"context"
	"testing"
	"time"

	"staybook/internal/domain/availability"
	"staybook/internal/domain/dwelling"
	"staybook/internal/domain/reservation"
	"staybook/internal/infra"
	"staybook/internal/infra/readstore"
	"staybook/internal/infra/repository"
	"staybook/internal/pkg/ptr"
	"staybook/internal/testutil/builder"
	"staybook/internal/testutil/containers"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

type ReadStoreTestSuite struct {
	suite.Suite
	pool         *pgxpool.Pool
	ctx          context.Context
	dwellings    *readstore.DwellingReadStore
	reservations *readstore.ReservationReadStore
	areas        *readstore.AreaReadStore
}

func (s *ReadStoreTestSuite) SetupTest() {
	s.pool, _ = containers.NewDatabase(s.T())
	s.ctx = context.Background()
	s.dwellings = readstore.NewDwellingReadStore(s.pool)
	s.reservations = readstore.NewReservationReadStore(s.pool)
	s.areas = readstore.NewAreaReadStore(s.pool)
}

func TestReadStoreSuite(t *testing.T) {
	suite.Run(t, new(ReadStoreTestSuite))
}

func (s *ReadStoreTestSuite) seedDwelling(mutate func(*builder.DwellingBuilder)) *dwelling.Dwelling {
	d, err := builder.NewDwellingBuilder().With(mutate).BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(repository.NewAccountRepository(s.pool).Ensure(s.ctx, d.OwnerID()))
	s.Require().NoError(repository.NewDwellingRepository(s.pool).Create(s.ctx, d))
	return d
}

func (s *ReadStoreTestSuite) seedReservation(d *dwelling.Dwelling, mutate func(*builder.ReservationBuilder)) *reservation.Reservation {
	r := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.DwellingID = d.ID()
		b.OwnerID = d.OwnerID()
	}).With(mutate).BuildReconstructed()
	s.Require().NoError(repository.NewAccountRepository(s.pool).Ensure(s.ctx, r.GuestID()))
	s.Require().NoError(repository.NewReservationRepository(s.pool).Insert(s.ctx, r))
	return r
}

func date(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *ReadStoreTestSuite) TestAreasAreSeeded() {
	areas, err := s.areas.List(s.ctx)
	s.Require().NoError(err)
	s.Len(areas, 7)
	s.Equal("Old Town", areas[0].Name)
}

func (s *ReadStoreTestSuite) TestDwellingListings() {
	older := s.seedDwelling(func(b *builder.DwellingBuilder) { b.AreaID = 1; b.CreatedAt = date(1, 1) })
	newer := s.seedDwelling(func(b *builder.DwellingBuilder) { b.AreaID = 2; b.CreatedAt = date(1, 5) })
	newest := s.seedDwelling(func(b *builder.DwellingBuilder) { b.AreaID = 1; b.CreatedAt = date(1, 9); b.OwnerID = older.OwnerID() })

	s.Run("search without area returns everything newest first", func() {
		items, err := s.dwellings.ListForSearch(s.ctx, nil)
		s.Require().NoError(err)
		s.Equal([]uuid.UUID{newest.ID(), newer.ID(), older.ID()}, listIDs(items))
		s.Equal("Old Town", items[0].AreaName)
	})

	s.Run("search by area", func() {
		items, err := s.dwellings.ListForSearch(s.ctx, ptr.To(1))
		s.Require().NoError(err)
		s.Equal([]uuid.UUID{newest.ID(), older.ID()}, listIDs(items))
	})

	s.Run("newest is limited", func() {
		items, err := s.dwellings.ListNewest(s.ctx, 2)
		s.Require().NoError(err)
		s.Equal([]uuid.UUID{newest.ID(), newer.ID()}, listIDs(items))
	})

	s.Run("by owner", func() {
		items, err := s.dwellings.ListByOwner(s.ctx, older.OwnerID())
		s.Require().NoError(err)
		s.Equal([]uuid.UUID{newest.ID(), older.ID()}, listIDs(items))

		ids, err := s.dwellings.ListIDsByOwner(s.ctx, older.OwnerID())
		s.Require().NoError(err)
		s.ElementsMatch([]uuid.UUID{newest.ID(), older.ID()}, ids)

		ids, err = s.dwellings.ListIDsByOwner(s.ctx, uuid.New())
		s.Require().NoError(err)
		s.Empty(ids)
	})

	s.Run("detail", func() {
		view, err := s.dwellings.FindByID(s.ctx, newer.ID())
		s.Require().NoError(err)
		s.Equal(newer.Details().Deposit.Minor(), view.Deposit)
		s.Equal("Riverside", view.AreaName)
		s.True(newer.CreatedAt().Equal(view.CreatedAt))

		_, err = s.dwellings.FindByID(s.ctx, uuid.New())
		s.True(infra.IsKind(err, infra.KindNotFound))
	})
}

func (s *ReadStoreTestSuite) TestReservationViews() {
	host := uuid.New()
	first := s.seedDwelling(func(b *builder.DwellingBuilder) { b.OwnerID = host; b.Title = "Canal house" })
	second := s.seedDwelling(func(b *builder.DwellingBuilder) { b.OwnerID = host })
	guest := uuid.New()

	early := s.seedReservation(first, func(b *builder.ReservationBuilder) { b.GuestID = guest; b.CreatedAt = date(2, 1) })
	late := s.seedReservation(second, func(b *builder.ReservationBuilder) {
		b.GuestID = guest
		b.CreatedAt = date(2, 3)
		b.Status = reservation.StatusRejected
		b.DecisionReason = "closed for winter"
	})
	s.seedReservation(first, func(b *builder.ReservationBuilder) { b.CheckIn = date(4, 1); b.CheckOut = date(4, 3) })

	s.Run("by guest newest first", func() {
		views, err := s.reservations.ListByGuest(s.ctx, guest)
		s.Require().NoError(err)
		s.Require().Len(views, 2)
		s.Equal(late.ID(), views[0].ID)
		s.Equal(early.ID(), views[1].ID)
		s.Equal("Canal house", views[1].DwellingTitle)
		s.Equal(host, views[1].HostID)
		s.Require().NotNil(views[0].DecisionReason)
		s.Equal("closed for winter", *views[0].DecisionReason)
		s.Nil(views[1].Comment)
	})

	s.Run("by dwellings", func() {
		views, err := s.reservations.ListByDwellings(s.ctx, []uuid.UUID{first.ID()})
		s.Require().NoError(err)
		s.Len(views, 2)
	})

	s.Run("blocking within a window", func() {
		both := []uuid.UUID{first.ID(), second.ID()}
		testCases := []struct {
			name      string
			dwellings []uuid.UUID
			in, out   *time.Time
			expected  int
		}{
			{name: "overlapping the first stays", dwellings: both, in: ptr.To(date(3, 2)), out: ptr.To(date(3, 3)), expected: 1},
			{name: "after the March stays", dwellings: both, in: ptr.To(date(3, 10)), out: nil, expected: 1},
			{name: "before everything", dwellings: both, in: nil, out: ptr.To(date(3, 1)), expected: 0},
			{name: "far future", dwellings: both, in: ptr.To(date(6, 1)), out: ptr.To(date(6, 5)), expected: 0},
			{name: "dwellings outside the candidates are skipped", dwellings: []uuid.UUID{second.ID()}, in: ptr.To(date(4, 1)), out: ptr.To(date(4, 2)), expected: 0},
			{name: "no candidates", dwellings: []uuid.UUID{}, in: ptr.To(date(3, 2)), out: ptr.To(date(3, 3)), expected: 0},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				window, err := availability.NewBounds(tc.in, tc.out)
				s.Require().NoError(err)
				bookings, err := s.reservations.ListBlockingWithin(s.ctx, tc.dwellings, window)
				s.Require().NoError(err)
				s.Len(bookings, tc.expected)
				for _, bk := range bookings {
					s.True(bk.Status.Blocking())
				}
			})
		}
	})
}

func listIDs(items []queries.DwellingListItem) []uuid.UUID {
	out := make([]uuid.UUID, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
