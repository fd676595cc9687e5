package api

import (
	"net/http"

	"staybook/internal/domain/reservation"
	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/middleware"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Book a stay on a dwelling. The reservation starts awaiting the host's decision.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	guestID, ok := middleware.GetAccountID(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.cmds.CreateReservation(c.Request.Context(), guestID, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservation(created))
}

// @Summary List reservations
// @Description List the reservations the caller made (guest) or received on their dwellings (host)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param role query string false "guest or host" default(guest)
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		unauthorized(c)
		return
	}

	role, err := reservation.ParseRole(c.Query("role"))
	if err != nil {
		respondError(c, err)
		return
	}

	views, err := h.q.ListReservationsForAccount(c.Request.Context(), accountID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Decide reservation
// @Description Accept or reject a reservation awaiting decision. Only the dwelling's host may decide.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.DecideReservationRequest true "Decision"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/decision [put]
func (h *ReservationHandler) DecideReservation(c *gin.Context) {
	actorID, ok := middleware.GetAccountID(c)
	if !ok {
		unauthorized(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid reservation ID format")
		return
	}

	var req reqdto.DecideReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		badRequest(c, bindErr, "Invalid request format")
		return
	}

	decided, err := h.cmds.DecideReservation(c.Request.Context(), actorID, id, req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(decided))
}

// @Summary Comment on reservation
// @Description Leave the guest's comment on an accepted stay, completing the reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CommentReservationRequest true "Comment"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/comment [put]
func (h *ReservationHandler) CommentReservation(c *gin.Context) {
	actorID, ok := middleware.GetAccountID(c)
	if !ok {
		unauthorized(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid reservation ID format")
		return
	}

	var req reqdto.CommentReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		badRequest(c, bindErr, "Invalid request format")
		return
	}

	commented, err := h.cmds.CommentReservation(c.Request.Context(), actorID, id, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(commented))
}
