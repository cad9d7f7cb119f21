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

type DayHandler struct {
	usecase usecase.IDayUseCase
}

func NewDayHandler(uc usecase.IDayUseCase) *DayHandler {
	return &DayHandler{usecase: uc}
}

// GetSheet returns the bookings of a user on a date with their sum.
//
// @Summary Get the bookings of a user on a date
// @Tags days
// @Produce json
// @Param user_id path string true "User id"
// @Param date path string true "Date, YYYY-MM-DD"
// @Success 200 {object} response.DaySheetResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /days/{user_id}/{date} [get]
func (h *DayHandler) GetSheet(c *gin.Context) {
	date, err := request.ParseDate(c.Param("date"))
	if err != nil {
		respondError(c, errInvalidDate)
		return
	}

	sheet, err := h.usecase.GetSheet(c.Request.Context(), c.Param("user_id"), date)
	if err != nil {
		respondError(c, mapDayError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDaySheet(sheet))
}

// Lock closes a day for new and edited bookings. There is no unlock.
//
// @Summary Lock a day
// @Tags days
// @Produce json
// @Param user_id path string true "User id"
// @Param date path string true "Date, YYYY-MM-DD"
// @Param X-User-ID header string false "Request user id"
// @Success 200 {object} response.DayResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /days/{user_id}/{date}/lock [post]
func (h *DayHandler) Lock(c *gin.Context) {
	date, err := request.ParseDate(c.Param("date"))
	if err != nil {
		respondError(c, errInvalidDate)
		return
	}

	day, err := h.usecase.Lock(c.Request.Context(), actorFrom(c), c.Param("user_id"), date)
	if err != nil {
		log.Printf("[day][handler] lock failed user_id=%s date=%s err=%v", c.Param("user_id"), c.Param("date"), err)
		respondError(c, mapDayError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDay(day))
}

func mapDayError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidActor):
		return pkg.NewDomainErrorSimple("INVALID_USER", "Invalid user id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDate):
		return errInvalidDate
	default:
		return internalError(err)
	}
}
