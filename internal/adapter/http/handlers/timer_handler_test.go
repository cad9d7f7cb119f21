package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	response "inhouse/internal/adapter/http/dto/response"
	"inhouse/internal/adapter/http/handlers/mocks"
	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestTimerHandler(t *testing.T) {
	t.Run("create without user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimerUseCase(ctrl)
		h := NewTimerHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "", "").Return(usecase.TimerStatus{}, usecase.ErrInvalidActor)

		r := newTestRouter()
		r.POST("/v1/timers", h.Create)

		w := serve(r, http.MethodPost, "/v1/timers", "", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("start with title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimerUseCase(ctrl)
		h := NewTimerHandler(uc)

		uc.EXPECT().Start(gomock.Any(), "u1", "t1", "Support").Return(usecase.TimerStatus{
			Timer: entities.Timer{ID: "t1", Title: "Support", Active: true},
		}, nil)

		r := newTestRouter()
		r.POST("/v1/timers/:id/start", h.Start)

		w := serve(r, http.MethodPost, "/v1/timers/t1/start", `{"title":"Support"}`, "u1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("stop returns rounded tuple", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimerUseCase(ctrl)
		h := NewTimerHandler(uc)

		uc.EXPECT().Stop(gomock.Any(), "u1", "t1").Return(usecase.TimerStatus{
			Timer:          entities.Timer{ID: "t1", Duration: 4380},
			Elapsed:        4380,
			ElapsedDisplay: "01:13",
			Hours:          1,
			Minutes:        15,
		}, nil)

		r := newTestRouter()
		r.POST("/v1/timers/:id/stop", h.Stop)

		w := serve(r, http.MethodPost, "/v1/timers/t1/stop", "", "u1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.TimerResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Hours != 1 || body.Minutes != 15 || body.ElapsedDisplay != "01:13" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("unknown timer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimerUseCase(ctrl)
		h := NewTimerHandler(uc)

		uc.EXPECT().Get(gomock.Any(), "t9").Return(usecase.TimerStatus{}, usecase.ErrTimerNotFound)

		r := newTestRouter()
		r.GET("/v1/timers/:id", h.Get)

		w := serve(r, http.MethodGet, "/v1/timers/t9", "", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("clear", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimerUseCase(ctrl)
		h := NewTimerHandler(uc)

		uc.EXPECT().Clear(gomock.Any(), "u1", "t1").Return(usecase.TimerStatus{Timer: entities.Timer{ID: "t1"}, Minutes: 15}, nil)

		r := newTestRouter()
		r.POST("/v1/timers/:id/clear", h.Clear)

		w := serve(r, http.MethodPost, "/v1/timers/t1/clear", "", "u1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
