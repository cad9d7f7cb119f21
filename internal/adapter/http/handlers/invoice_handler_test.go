package handlers

import (
	"net/http"
	"testing"

	"inhouse/internal/adapter/http/handlers/mocks"
	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestInvoiceHandler_Create(t *testing.T) {
	t.Run("missing period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(ctrl))

		r := newTestRouter()
		r.POST("/v1/invoices", h.Create)

		w := serve(r, http.MethodPost, "/v1/invoices", `{"project_id":"p1"}`, "u1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("inverted period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "u1", gomock.Any()).Return(usecase.InvoiceDetails{}, usecase.ErrInvalidPeriod)

		r := newTestRouter()
		r.POST("/v1/invoices", h.Create)

		w := serve(r, http.MethodPost, "/v1/invoices", `{"project_id":"p1","valid_from":"2024-02-01","valid_until":"2024-01-01"}`, "u1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "INVALID_PERIOD" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "u1", gomock.Any()).Return(usecase.InvoiceDetails{
			Invoice: entities.Invoice{ID: "inv-1", ProjectID: "p1", InternalNo: 1},
			Label:   "WEB-1",
		}, nil)

		r := newTestRouter()
		r.POST("/v1/invoices", h.Create)

		w := serve(r, http.MethodPost, "/v1/invoices", `{"project_id":"p1","valid_from":"2024-01-01","valid_until":"2024-01-31"}`, "u1")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc)

	uc.EXPECT().GetDetails(gomock.Any(), "inv-9").Return(usecase.InvoiceDetails{}, usecase.ErrInvoiceNotFound)

	r := newTestRouter()
	r.GET("/v1/invoices/:id", h.Get)

	w := serve(r, http.MethodGet, "/v1/invoices/inv-9", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
