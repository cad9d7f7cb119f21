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

var (
	errInvalidProfilePayload  = pkg.NewDomainErrorSimple("INVALID_PROFILE_INPUT", "Invalid user profile payload", http.StatusBadRequest)
	errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)
	errInvalidDailyRate       = pkg.NewDomainErrorSimple("INVALID_DAILY_RATE", "Daily rate must not be negative", http.StatusBadRequest)
)

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

// @Summary Create the profile of a user
// @Tags profiles
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Request user id"
// @Param payload body request.CreateProfileRequest true "Payload"
// @Success 201 {object} response.ProfileResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /profiles [post]
func (h *ProfileHandler) Create(c *gin.Context) {
	var payload request.CreateProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidProfilePayload)
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), actorFrom(c), payload.ToInput(actorFrom(c)))
	if err != nil {
		log.Printf("[profile][handler] create failed err=%v", err)
		respondError(c, mapProfileError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProfile(p))
}

// @Summary Get the profile of a user
// @Tags profiles
// @Produce json
// @Param user_id path string true "User id"
// @Success 200 {object} response.ProfileResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /profiles/{user_id} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.usecase.GetByUserID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, mapProfileError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(p))
}

func mapProfileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidActor):
		return errMissingUser
	case errors.Is(err, usecase.ErrProfileAlreadyExists):
		return pkg.NewDomainErrorSimple("PROFILE_ALREADY_EXISTS", "User profile already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "User profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnsupportedLanguage):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_LANGUAGE", "Unsupported language", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDailyRate):
		return errInvalidDailyRate
	default:
		return internalError(err)
	}
}

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Request user id"
// @Param payload body request.CreateCustomerRequest true "Payload"
// @Success 201 {object} response.CustomerResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidCustomerPayload)
		return
	}

	cust, err := h.usecase.Create(c.Request.Context(), actorFrom(c), payload.ToInput())
	if err != nil {
		log.Printf("[customer][handler] create failed err=%v", err)
		respondError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(cust))
}

// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer id"
// @Success 200 {object} response.CustomerResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	cust, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(cust))
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCustomerAlreadyExists):
		return pkg.NewDomainErrorSimple("CUSTOMER_ALREADY_EXISTS", "A customer with these names already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidCustomerName),
		errors.Is(err, usecase.ErrInvalidCustomerID):
		return errInvalidCustomerPayload
	case errors.Is(err, usecase.ErrInvalidDailyRate):
		return errInvalidDailyRate
	default:
		return internalError(err)
	}
}
