package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"inhouse/internal/adapter/http/handlers/mocks"
	"inhouse/internal/domain/entities"
	"inhouse/internal/domain/timesheet"
	"inhouse/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestBookingHandler_Create(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewBookingHandler(mocks.NewMockIBookingUseCase(ctrl))

		r := newTestRouter()
		r.POST("/v1/bookings", h.Create)

		w := serve(r, http.MethodPost, "/v1/bookings", `{"date":"06.01.2024","project_id":"p1","title":"Work","duration":"1"}`, "u1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "INVALID_DATE" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("closed day returns reasons", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		reasons := []string{timesheet.ReasonDayLocked, timesheet.ReasonProjectInactive}
		uc.EXPECT().Create(gomock.Any(), "u1", gomock.Any()).Return(entities.Booking{}, &usecase.BookingClosedError{Reasons: reasons})

		r := newTestRouter()
		r.POST("/v1/bookings", h.Create)

		w := serve(r, http.MethodPost, "/v1/bookings", `{"date":"2024-01-06","project_id":"p1","title":"Work","duration":"1"}`, "u1")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "BOOKING_CLOSED" || len(body.Details) != 2 || body.Details[0] != "The day is locked." {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "", gomock.Any()).Return(entities.Booking{}, usecase.ErrInvalidActor)

		r := newTestRouter()
		r.POST("/v1/bookings", h.Create)

		w := serve(r, http.MethodPost, "/v1/bookings", `{"date":"2024-01-06","project_id":"p1","title":"Work","duration":"1"}`, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "u1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.CreateBookingInput) (entities.Booking, error) {
				if in.UserID != "u1" || !in.Date.Equal(time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected input %+v", in)
				}
				if !in.Duration.Equal(decimal.RequireFromString("1.5")) {
					t.Fatalf("unexpected duration %s", in.Duration)
				}
				return entities.Booking{ID: "b1", Title: in.Title, Position: 1, Duration: in.Duration}, nil
			})

		r := newTestRouter()
		r.POST("/v1/bookings", h.Create)

		w := serve(r, http.MethodPost, "/v1/bookings", `{"date":"2024-01-06","project_id":"p1","title":"Work","duration":1.5}`, "u1")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestBookingHandler_UpdateAndDelete(t *testing.T) {
	t.Run("update settled booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		uc.EXPECT().Update(gomock.Any(), "u1", "b1", gomock.Any()).
			Return(entities.Booking{}, &usecase.BookingClosedError{Reasons: []string{timesheet.ReasonSettled}})

		r := newTestRouter()
		r.PATCH("/v1/bookings/:id", h.Update)

		w := serve(r, http.MethodPatch, "/v1/bookings/b1", `{"title":"New"}`, "u1")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("update passes only given fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		uc.EXPECT().Update(gomock.Any(), "u1", "b1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, in usecase.UpdateBookingInput) (entities.Booking, error) {
				if in.Title == nil || *in.Title != "New" || in.Duration != nil || in.Location != nil {
					t.Fatalf("unexpected input %+v", in)
				}
				return entities.Booking{ID: "b1", Title: "New"}, nil
			})

		r := newTestRouter()
		r.PATCH("/v1/bookings/:id", h.Update)

		w := serve(r, http.MethodPatch, "/v1/bookings/b1", `{"title":"New"}`, "u1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "u1", "b1").Return(nil)

		r := newTestRouter()
		r.DELETE("/v1/bookings/:id", h.Delete)

		w := serve(r, http.MethodDelete, "/v1/bookings/b1", "", "u1")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "u1", "b9").Return(usecase.ErrBookingNotFound)

		r := newTestRouter()
		r.DELETE("/v1/bookings/:id", h.Delete)

		w := serve(r, http.MethodDelete, "/v1/bookings/b9", "", "u1")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBookingHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBookingUseCase(ctrl)
	h := NewBookingHandler(uc)

	uc.EXPECT().GetDetails(gomock.Any(), "b1").Return(usecase.BookingDetails{
		Booking:        entities.Booking{ID: "b1", Duration: decimal.NewFromInt(2)},
		Day:            entities.NewDay("u1", time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)),
		Project:        entities.Project{ID: "p1", Key: "WEB"},
		ClosingReasons: []string{timesheet.ReasonDayLocked},
		Coefficient:    decimal.RequireFromString("1.5"),
	}, nil)

	r := newTestRouter()
	r.GET("/v1/bookings/:id", h.Get)

	w := serve(r, http.MethodGet, "/v1/bookings/b1", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestBookingHandler_GetMissingDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBookingUseCase(ctrl)
	h := NewBookingHandler(uc)

	uc.EXPECT().GetDetails(gomock.Any(), "b1").Return(usecase.BookingDetails{}, usecase.ErrDayNotFound)

	r := newTestRouter()
	r.GET("/v1/bookings/:id", h.Get)

	w := serve(r, http.MethodGet, "/v1/bookings/b1", "", "u1")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if body := decodeError(t, w); body.Code != "DAY_NOT_FOUND" {
		t.Fatalf("unexpected code %q", body.Code)
	}
}
