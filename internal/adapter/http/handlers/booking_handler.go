package handlers

import (
	"errors"
	"log"
	"net/http"

	request "inhouse/internal/adapter/http/dto/request"
	response "inhouse/internal/adapter/http/dto/response"
	"inhouse/internal/usecase"
	"inhouse/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)

// BookingHandler serves bookings. Changes to closed bookings are answered
// with 422 and the closing reasons as details.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// @Summary Create a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Request user id"
// @Param payload body request.CreateBookingRequest true "Payload"
// @Success 201 {object} response.BookingResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidBookingPayload)
		return
	}
	in, err := payload.ToInput(actorFrom(c))
	if err != nil {
		respondError(c, errInvalidDate)
		return
	}

	b, err := h.usecase.Create(c.Request.Context(), actorFrom(c), in)
	if err != nil {
		log.Printf("[booking][handler] create failed project_id=%s err=%v", payload.ProjectID, err)
		respondError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBooking(b))
}

// @Summary Get a booking with its closing reasons
// @Tags bookings
// @Produce json
// @Param id path string true "Booking id"
// @Success 200 {object} response.BookingDetailsResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	d, err := h.usecase.GetDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBookingDetails(d))
}

// @Summary Update an open booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking id"
// @Param X-User-ID header string false "Request user id"
// @Param payload body request.UpdateBookingRequest true "Payload"
// @Success 200 {object} response.BookingResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	var payload request.UpdateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidBookingPayload)
		return
	}

	b, err := h.usecase.Update(c.Request.Context(), actorFrom(c), c.Param("id"), payload.ToInput())
	if err != nil {
		log.Printf("[booking][handler] update failed booking_id=%s err=%v", c.Param("id"), err)
		respondError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

// @Summary Delete an open booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking id"
// @Param X-User-ID header string false "Request user id"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), actorFrom(c), c.Param("id")); err != nil {
		log.Printf("[booking][handler] delete failed booking_id=%s err=%v", c.Param("id"), err)
		respondError(c, mapBookingError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapBookingError(err error) *pkg.AppError {
	if appErr := mapSharedError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDayNotFound):
		return pkg.NewDomainErrorSimple("DAY_NOT_FOUND", "Day of the booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidDate):
		return errInvalidDate
	case errors.Is(err, usecase.ErrStepNotInProject):
		return pkg.NewDomainErrorSimple("STEP_NOT_IN_PROJECT", "Project step does not belong to the project", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDuration):
		return pkg.NewDomainErrorSimple("INVALID_DURATION", "Duration must be greater than 0 and at most 24 hours", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTimeRange):
		return pkg.NewDomainErrorSimple("INVALID_TIME_RANGE", "Invalid from/to time, expected HH:MM and from not after to", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBookingID),
		errors.Is(err, usecase.ErrInvalidBookingTitle),
		errors.Is(err, usecase.ErrInvalidStepID):
		return errInvalidBookingPayload
	default:
		return internalError(err)
	}
}
