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

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// Create opens an invoice for a project period and settles the open
// bookings of that period.
//
// @Summary Create an invoice and settle the bookings of its period
// @Tags invoices
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Request user id"
// @Param payload body request.CreateInvoiceRequest true "Payload"
// @Success 201 {object} response.InvoiceResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidInvoicePayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, errInvalidDate)
		return
	}

	d, err := h.usecase.Create(c.Request.Context(), actorFrom(c), in)
	if err != nil {
		log.Printf("[invoice][handler] create failed project_id=%s err=%v", payload.ProjectID, err)
		respondError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoiceDetails(d))
}

// @Summary Get an invoice with its lines
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice id"
// @Success 200 {object} response.InvoiceResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	d, err := h.usecase.GetDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoiceDetails(d))
}

func mapInvoiceError(err error) *pkg.AppError {
	if appErr := mapSharedError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPeriod):
		return pkg.NewDomainErrorSimple("INVALID_PERIOD", "valid_from must not be after valid_until", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInvoiceNo),
		errors.Is(err, usecase.ErrInvalidInvoiceID):
		return errInvalidInvoicePayload
	default:
		return internalError(err)
	}
}
