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

var errInvalidTimerPayload = pkg.NewDomainErrorSimple("INVALID_TIMER_INPUT", "Invalid timer payload", http.StatusBadRequest)

type TimerHandler struct {
	usecase usecase.ITimerUseCase
}

func NewTimerHandler(uc usecase.ITimerUseCase) *TimerHandler {
	return &TimerHandler{usecase: uc}
}

// @Summary Create a timer
// @Tags timers
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Request user id"
// @Param payload body request.TimerRequest true "Payload"
// @Success 201 {object} response.TimerResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /timers [post]
func (h *TimerHandler) Create(c *gin.Context) {
	payload, ok := bindTimerRequest(c)
	if !ok {
		return
	}
	s, err := h.usecase.Create(c.Request.Context(), actorFrom(c), payload.Title)
	if err != nil {
		respondError(c, mapTimerError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTimerStatus(s))
}

// @Summary Get a timer
// @Tags timers
// @Produce json
// @Param id path string true "Timer id"
// @Success 200 {object} response.TimerResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /timers/{id} [get]
func (h *TimerHandler) Get(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapTimerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTimerStatus(s))
}

// Start begins a run. An optional title in the body replaces the current one.
//
// @Summary Start a timer
// @Tags timers
// @Accept json
// @Produce json
// @Param id path string true "Timer id"
// @Param X-User-ID header string false "Request user id"
// @Param payload body request.TimerRequest true "Payload"
// @Success 200 {object} response.TimerResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /timers/{id}/start [post]
func (h *TimerHandler) Start(c *gin.Context) {
	payload, ok := bindTimerRequest(c)
	if !ok {
		return
	}
	s, err := h.usecase.Start(c.Request.Context(), actorFrom(c), c.Param("id"), payload.Title)
	if err != nil {
		log.Printf("[timer][handler] start failed timer_id=%s err=%v", c.Param("id"), err)
		respondError(c, mapTimerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTimerStatus(s))
}

// @Summary Stop a timer
// @Tags timers
// @Produce json
// @Param id path string true "Timer id"
// @Param X-User-ID header string false "Request user id"
// @Success 200 {object} response.TimerResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /timers/{id}/stop [post]
func (h *TimerHandler) Stop(c *gin.Context) {
	s, err := h.usecase.Stop(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		log.Printf("[timer][handler] stop failed timer_id=%s err=%v", c.Param("id"), err)
		respondError(c, mapTimerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTimerStatus(s))
}

// @Summary Clear a timer
// @Tags timers
// @Produce json
// @Param id path string true "Timer id"
// @Param X-User-ID header string false "Request user id"
// @Success 200 {object} response.TimerResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /timers/{id}/clear [post]
func (h *TimerHandler) Clear(c *gin.Context) {
	s, err := h.usecase.Clear(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, mapTimerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTimerStatus(s))
}

func bindTimerRequest(c *gin.Context) (request.TimerRequest, bool) {
	var payload request.TimerRequest
	if c.Request.ContentLength == 0 {
		return payload, true
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidTimerPayload)
		return payload, false
	}
	return payload, true
}

func mapTimerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidActor):
		return errMissingUser
	case errors.Is(err, usecase.ErrTimerNotFound):
		return pkg.NewDomainErrorSimple("TIMER_NOT_FOUND", "Timer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTimerID):
		return errInvalidTimerPayload
	default:
		return internalError(err)
	}
}
