//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"staybook/internal/domain/reservation"
	"staybook/internal/handler/api"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/pkg/errs"
	"staybook/internal/testutil/builder"
	"staybook/internal/testutil/httptest"
	commandsmock "staybook/internal/testutil/mock/commands"
	queriesmock "staybook/internal/testutil/mock/queries"
	"staybook/internal/testutil/testutil"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth trusts the bearer value as the acting account ID.
func fakeAuth(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	id, err := uuid.Parse(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Set("account_id", id)
	c.Next()
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	accountID    uuid.UUID
	token        string
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.accountID = uuid.New()
	s.token = s.accountID.String()

	s.router.POST("/reservations", fakeAuth, s.handler.CreateReservation)
	s.router.GET("/reservations", fakeAuth, s.handler.ListReservations)
	s.router.PUT("/reservations/:id/decision", fakeAuth, s.handler.DecideReservation)
	s.router.PUT("/reservations/:id/comment", fakeAuth, s.handler.CommentReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	created, err := b.BuildDomain()
	s.Require().NoError(err)

	s.Run("success: returns 201 Created with the priced reservation", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), s.accountID, commands.CreateReservationRequest{
			DwellingID: b.DwellingID,
			CheckIn:    b.CheckIn,
			CheckOut:   b.CheckOut,
		}).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.token)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.ID)
		s.Equal("2024-03-01", body.CheckIn)
		s.Equal("2024-03-04", body.CheckOut)
		s.Equal(3, body.Nights)
		s.Equal(int64(30000), body.TotalAmount)
		s.Equal("AWAITING_DECISION", body.Status)
	})

	s.Run("error: 400 Bad Request on malformed input", func() {
		testCases := []testCaseReservation{
			{name: "missing dwelling_id", mutate: testutil.Field("dwelling_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing check_in", mutate: testutil.Field("check_in", nil), expectCode: http.StatusBadRequest},
			{name: "missing check_out", mutate: testutil.Field("check_out", nil), expectCode: http.StatusBadRequest},
			{name: "dwelling_id is not a uuid", mutate: testutil.Field("dwelling_id", "room-7"), expectCode: http.StatusBadRequest},
			{name: "check_in is not a date", mutate: testutil.Field("check_in", "next friday"), expectCode: http.StatusBadRequest},
			{name: "check_out has a clock part", mutate: testutil.Field("check_out", "2024-03-04T10:00:00Z"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, s.token)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "dates overlap", commandsError: errs.BookingConflict(b.DwellingID), expectedStatus: http.StatusConflict, expectedMsg: "overlap"},
			{name: "unknown dwelling", commandsError: errs.DwellingNotFound(b.DwellingID), expectedStatus: http.StatusNotFound, expectedMsg: "Dwelling not found"},
			{name: "own dwelling", commandsError: errs.Forbidden(b.DwellingID, "hosts cannot reserve their own dwelling"), expectedStatus: http.StatusForbidden, expectedMsg: "hosts cannot"},
			{name: "stay too short", commandsError: errs.ConflictInput("check_out", "stay must be at least 2 nights"), expectedStatus: http.StatusBadRequest, expectedMsg: "at least 2 nights"},
			{name: "storage failure", commandsError: errs.Persistence(errors.New("pq: connection reset")), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
			{name: "unclassified failure", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), s.accountID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.token)
				body := httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.NotContains(rec.Body.String(), "connection reset")
				if tc.expectedStatus == http.StatusConflict {
					s.Equal(b.DwellingID.String(), body.Detail.ID)
				}
			})
		}
	})
}

// ================================================================================
// TestListReservations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListReservations() {
	view := builder.NewReservationBuilder().BuildView()

	testCases := []struct {
		name  string
		query string
		role  reservation.Role
	}{
		{name: "defaults to guest", query: "", role: reservation.RoleGuest},
		{name: "guest", query: "?role=guest", role: reservation.RoleGuest},
		{name: "host", query: "?role=host", role: reservation.RoleHost},
	}
	for _, tc := range testCases {
		s.Run("success: "+tc.name, func() {
			s.mockQueries.EXPECT().ListReservationsForAccount(gomock.Any(), s.accountID, tc.role).
				Return([]*queries.ReservationView{view}, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations"+tc.query, nil, s.token)

			var body resdto.ReservationListResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Require().Len(body.Reservations, 1)
			s.Equal(view.ID, body.Reservations[0].ID)
			s.Equal(view.DwellingTitle, body.Reservations[0].DwellingTitle)
		})
	}

	s.Run("success: empty list renders as an empty array", func() {
		s.mockQueries.EXPECT().ListReservationsForAccount(gomock.Any(), s.accountID, reservation.RoleHost).
			Return([]*queries.ReservationView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?role=host", nil, s.token)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"reservations":[]}`, rec.Body.String())
	})

	s.Run("error: 400 on unknown role", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?role=admin", nil, s.token)
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		s.Equal("role", body.Detail.Field)
	})
}

// ================================================================================
// TestDecideReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestDecideReservation() {
	r := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.Status = reservation.StatusAwaitingReview
	}).BuildReconstructed()
	url := "/reservations/" + r.ID().String() + "/decision"

	s.Run("success: returns the decided reservation", func() {
		s.mockCommands.EXPECT().DecideReservation(gomock.Any(), s.accountID, r.ID(), commands.DecideReservationRequest{Action: "ACCEPT"}).
			Return(r, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"action": "ACCEPT"}, s.token)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("AWAITING_REVIEW", body.Status)
	})

	s.Run("error: 400 on malformed input", func() {
		testCases := []struct {
			name string
			url  string
			body map[string]any
		}{
			{name: "bad id", url: "/reservations/not-a-uuid/decision", body: map[string]any{"action": "ACCEPT"}},
			{name: "missing action", url: url, body: map[string]any{"reason": "x"}},
			{name: "reason too long", url: url, body: map[string]any{"action": "REJECT", "reason": strings.Repeat("a", 501)}},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, tc.url, tc.body, s.token)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedState  string
		}{
			{name: "not the host", commandsError: errs.Forbidden(r.ID(), "only the host of the dwelling can decide"), expectedStatus: http.StatusForbidden},
			{name: "unknown reservation", commandsError: errs.ReservationNotFound(r.ID()), expectedStatus: http.StatusNotFound},
			{name: "already decided", commandsError: errs.InvalidTransition(r.ID(), "REJECTED", "a decision is only possible while AWAITING_DECISION"), expectedStatus: http.StatusConflict, expectedState: "REJECTED"},
			{name: "rejection without reason", commandsError: errs.InvalidInput("reason", "a rejection requires a reason"), expectedStatus: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().DecideReservation(gomock.Any(), s.accountID, r.ID(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"action": "REJECT"}, s.token)
				body := httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
				s.Equal(tc.expectedState, body.Detail.Status)
			})
		}
	})
}

// ================================================================================
// TestCommentReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCommentReservation() {
	r := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.Status = reservation.StatusCompleted
		b.Comment = "spotless"
	}).BuildReconstructed()
	url := "/reservations/" + r.ID().String() + "/comment"

	s.Run("success: returns the completed reservation", func() {
		s.mockCommands.EXPECT().CommentReservation(gomock.Any(), s.accountID, r.ID(), "spotless").Return(r, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"comment": "spotless"}, s.token)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("COMPLETED", body.Status)
		s.Require().NotNil(body.Comment)
		s.Equal("spotless", *body.Comment)
	})

	s.Run("error: 400 when the comment is too long", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"comment": strings.Repeat("a", 1001)}, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 when the stay is not awaiting review", func() {
		s.mockCommands.EXPECT().CommentReservation(gomock.Any(), s.accountID, r.ID(), gomock.Any()).
			Return(nil, errs.InvalidTransition(r.ID(), "AWAITING_DECISION", "a comment is only possible while AWAITING_REVIEW")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"comment": "great"}, s.token)
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
		s.Equal("AWAITING_DECISION", body.Detail.Status)
	})
}
