package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"inhouse/internal/adapter/http/handlers/mocks"
	"inhouse/internal/app"
	"inhouse/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestGetRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	projects := mocks.NewMockIProjectUseCase(ctrl)
	uc := app.UseCases{
		Projects:  projects,
		Steps:     mocks.NewMockIProjectStepUseCase(ctrl),
		Bookings:  mocks.NewMockIBookingUseCase(ctrl),
		Days:      mocks.NewMockIDayUseCase(ctrl),
		Invoices:  mocks.NewMockIInvoiceUseCase(ctrl),
		Timers:    mocks.NewMockITimerUseCase(ctrl),
		Stars:     mocks.NewMockIStarUseCase(ctrl),
		Profiles:  mocks.NewMockIProfileUseCase(ctrl),
		Customers: mocks.NewMockICustomerUseCase(ctrl),
	}
	r := gin.New()
	getRoutes(r, uc)

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"GET /v1/ping",
		"POST /v1/projects",
		"POST /v1/projects/:id/copy",
		"PATCH /v1/steps/:id/status",
		"DELETE /v1/bookings/:id",
		"POST /v1/days/:user_id/:date/lock",
		"GET /v1/invoices/:id",
		"POST /v1/timers/:id/clear",
		"PUT /v1/stars/:kind/:object_id",
		"GET /v1/stars/:kind",
		"GET /v1/profiles/:user_id",
		"POST /v1/customers",
	} {
		if !registered[want] {
			t.Fatalf("route %q not registered", want)
		}
	}

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("projects list", func(t *testing.T) {
		projects.EXPECT().List(gomock.Any()).Return([]entities.Project{{ID: "p1", Key: "WEB"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/projects", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
