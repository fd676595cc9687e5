package api

import (
	"net/http"

	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AreaHandler struct {
	q queries.AreaQueries
}

func NewAreaHandler(q queries.AreaQueries) *AreaHandler {
	return &AreaHandler{q: q}
}

// @Summary List areas
// @Tags areas
// @Produce json
// @Success 200 {object} resdto.AreaListResponse
// @Router /api/areas [get]
func (h *AreaHandler) List(c *gin.Context) {
	areas, err := h.q.ListAreas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AreaListResponse{Areas: areas})
}
