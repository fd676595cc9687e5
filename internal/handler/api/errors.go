package api

import (
	"errors"
	"net/http"

	"staybook/internal/handler/httperr"
	"staybook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type errorDetail struct {
	Field  string     `json:"field,omitempty"`
	ID     *uuid.UUID `json:"id,omitempty"`
	Status string     `json:"status,omitempty"`
}

// statusOf maps an error kind to its HTTP status and public message.
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrConflictInput):
		return http.StatusBadRequest, "Conflicting date input"
	case errors.Is(err, errs.ErrInvalidInput):
		return http.StatusBadRequest, "Invalid input"
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, errs.ErrDwellingNotFound):
		return http.StatusNotFound, "Dwelling not found"
	case errors.Is(err, errs.ErrReservationNotFound):
		return http.StatusNotFound, "Reservation not found"
	case errors.Is(err, errs.ErrBookingConflict):
		return http.StatusConflict, "Requested dates are not available"
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict, "Reservation is not in a state that allows this action"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// respondError renders a classified error. Storage detail never reaches the client.
func respondError(c *gin.Context, err error) {
	status, msg := statusOf(err)
	if status == http.StatusInternalServerError {
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}

	var detail *errorDetail
	if e, ok := errs.Detail(err); ok {
		if e.Msg != "" {
			msg = e.Msg
		}
		detail = &errorDetail{Field: e.Field, Status: e.Status}
		if e.EntityID != uuid.Nil {
			id := e.EntityID
			detail.ID = &id
		}
		if *detail == (errorDetail{}) {
			detail = nil
		}
	}
	if detail == nil {
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}
	httperr.AbortWithError(c, status, err, msg, detail)
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

var errMissingAccount = errors.New("authenticated account missing from context")

func unauthorized(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAccount, "Unauthorized", nil)
}
