package api

import (
	"net/http"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/middleware"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DwellingHandler struct {
	cmds commands.DwellingCommands
	q    queries.ListingQueries
}

func NewDwellingHandler(cmds commands.DwellingCommands, q queries.ListingQueries) *DwellingHandler {
	return &DwellingHandler{cmds: cmds, q: q}
}

// @Summary Search dwellings
// @Description Paginated listing search filtered by area and availability window
// @Tags dwellings
// @Produce json
// @Param aid query int false "Area ID"
// @Param sd query string false "Check-in date (YYYY-MM-DD)"
// @Param ed query string false "Check-out date (YYYY-MM-DD)"
// @Param sk query string false "Sort key: new, booking, price-inc, price-des"
// @Param p query int false "Page, 1-based"
// @Success 200 {object} queries.ListingPage
// @Failure 400 {object} httperr.Response
// @Router /api/dwellings/search [get]
func (h *DwellingHandler) Search(c *gin.Context) {
	var query reqdto.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err, "Invalid query")
		return
	}
	params, err := query.ToParams()
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.q.SearchListings(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Newest dwellings
// @Description The most recently published dwellings for the landing page
// @Tags dwellings
// @Produce json
// @Success 200 {object} resdto.DwellingListResponse
// @Router /api/dwellings/index [get]
func (h *DwellingHandler) Index(c *gin.Context) {
	items, err := h.q.ListNewest(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DwellingListResponse{Dwellings: items})
}

// @Summary Get dwelling
// @Tags dwellings
// @Produce json
// @Param id path string true "Dwelling ID"
// @Success 200 {object} queries.DwellingDetailView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/dwellings/{id} [get]
func (h *DwellingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid dwelling ID format")
		return
	}

	view, err := h.q.GetDwelling(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Publish dwelling
// @Tags dwellings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PublishDwellingRequest true "Dwelling"
// @Success 201 {object} resdto.DwellingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/dwellings [post]
func (h *DwellingHandler) Publish(c *gin.Context) {
	ownerID, ok := middleware.GetAccountID(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req reqdto.PublishDwellingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	d, err := h.cmds.PublishDwelling(c.Request.Context(), ownerID, req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDwelling(d))
}

// @Summary Own dwellings
// @Tags dwellings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DwellingListResponse
// @Failure 401 {object} httperr.Response
// @Router /api/me/dwellings [get]
func (h *DwellingHandler) ListOwn(c *gin.Context) {
	ownerID, ok := middleware.GetAccountID(c)
	if !ok {
		unauthorized(c)
		return
	}

	items, err := h.q.ListOwnDwellings(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DwellingListResponse{Dwellings: items})
}
