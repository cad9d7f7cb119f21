package handlers

import (
	"net/http"
	"testing"
	"time"

	"inhouse/internal/adapter/http/handlers/mocks"
	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestDayHandler(t *testing.T) {
	date := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewDayHandler(mocks.NewMockIDayUseCase(ctrl))

		r := newTestRouter()
		r.GET("/v1/days/:user_id/:date", h.GetSheet)

		w := serve(r, http.MethodGet, "/v1/days/u1/yesterday", "", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("sheet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDayUseCase(ctrl)
		h := NewDayHandler(uc)

		uc.EXPECT().GetSheet(gomock.Any(), "u1", date).Return(usecase.DaySheet{
			Day:          entities.NewDay("u1", date),
			TotalMinutes: 90,
			Total:        "01:30",
		}, nil)

		r := newTestRouter()
		r.GET("/v1/days/:user_id/:date", h.GetSheet)

		w := serve(r, http.MethodGet, "/v1/days/u1/2024-01-06", "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDayUseCase(ctrl)
		h := NewDayHandler(uc)

		day := entities.NewDay("u1", date)
		day.Locked = true
		uc.EXPECT().Lock(gomock.Any(), "admin", "u1", date).Return(day, nil)

		r := newTestRouter()
		r.POST("/v1/days/:user_id/:date/lock", h.Lock)

		w := serve(r, http.MethodPost, "/v1/days/u1/2024-01-06/lock", "", "admin")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
