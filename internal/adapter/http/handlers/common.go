package handlers

import (
	"errors"
	"net/http"
	"strings"

	"inhouse/internal/usecase"
	"inhouse/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderUserID carries the id of the user performing the request. It is
// recorded in the audit fields of every saved record.
const HeaderUserID = "X-User-ID"

var (
	errMissingUser     = pkg.NewDomainErrorSimple("MISSING_USER", "X-User-ID header is required", http.StatusUnauthorized)
	errInvalidDate     = pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
	errPositionTaken   = pkg.NewDomainErrorSimple("POSITION_CONFLICT", "Position already taken, retry the request", http.StatusConflict)
	errInvalidStatus   = pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status", http.StatusBadRequest)
	errInvalidCoeff    = pkg.NewDomainErrorSimple("INVALID_COEFFICIENT", "Coefficients must not be negative", http.StatusBadRequest)
	errInvalidPosition = pkg.NewDomainErrorSimple("INVALID_POSITION", "Position must not be negative", http.StatusBadRequest)
)

func actorFrom(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(HeaderUserID))
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapSharedError maps the errors several use cases return. It returns nil
// for anything else.
func mapSharedError(err error) *pkg.AppError {
	var closed *usecase.BookingClosedError
	switch {
	case errors.As(err, &closed):
		return pkg.NewDomainError("BOOKING_CLOSED", "Booking is closed", err, http.StatusUnprocessableEntity).WithDetails(closed.Reasons...)
	case errors.Is(err, usecase.ErrInvalidActor):
		return errMissingUser
	case errors.Is(err, usecase.ErrPositionConflict):
		return errPositionTaken
	case errors.Is(err, usecase.ErrInvalidCoefficient):
		return errInvalidCoeff
	case errors.Is(err, usecase.ErrInvalidPosition):
		return errInvalidPosition
	case errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_PROJECT_ID", "Invalid project id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStepNotFound):
		return pkg.NewDomainErrorSimple("STEP_NOT_FOUND", "Project step not found", http.StatusNotFound)
	}
	return nil
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
