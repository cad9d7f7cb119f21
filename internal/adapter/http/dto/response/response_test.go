package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"inhouse/internal/domain/billing"
	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromBooking(t *testing.T) {
	b := entities.Booking{
		ID:        "b1",
		InvoiceID: "inv-1",
		Title:     "Work",
		Duration:  decimal.RequireFromString("2.75"),
	}
	res := FromBooking(b)
	if res.DurationDisplay != "02:45" {
		t.Fatalf("unexpected duration display %q", res.DurationDisplay)
	}
	if !res.Settled {
		t.Fatalf("expected settled booking")
	}
}

func TestFromBookingDetails(t *testing.T) {
	day := entities.NewDay("u1", time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC))
	d := usecase.BookingDetails{
		Booking:     entities.Booking{ID: "b1", Duration: decimal.NewFromInt(2)},
		Day:         day,
		Project:     entities.Project{ID: "p1", Key: "WEB"},
		Step:        &entities.ProjectStep{ID: "s1", Name: "Design"},
		IsOpen:      true,
		Coefficient: decimal.RequireFromString("1.5"),
	}
	res := FromBookingDetails(d)
	if res.Date != "2024-01-06" || res.UserID != "u1" || res.ProjectKey != "WEB" || res.StepName != "Design" {
		t.Fatalf("unexpected details %+v", res)
	}
	if !res.WeightedDuration.Equal(decimal.NewFromInt(3)) {
		t.Fatalf("expected weighted 3, got %s", res.WeightedDuration)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"closing_reasons":[]`) {
		t.Fatalf("expected empty closing reasons list, got %s", raw)
	}
	if !strings.Contains(string(raw), `"id":"b1"`) {
		t.Fatalf("expected embedded booking fields, got %s", raw)
	}
}

func TestFromDaySheet(t *testing.T) {
	s := usecase.DaySheet{
		Day:          entities.NewDay("u1", time.Date(2010, 1, 12, 0, 0, 0, 0, time.UTC)),
		Bookings:     []entities.Booking{{ID: "b1", Duration: decimal.NewFromInt(1)}},
		TotalMinutes: 60,
		Total:        "01:00",
	}
	res := FromDaySheet(s)
	if res.Slug != "2010/01/12" || res.Date != "2010-01-12" || len(res.Bookings) != 1 || res.Total != "01:00" {
		t.Fatalf("unexpected sheet %+v", res)
	}
}

func TestFromInvoiceDetails(t *testing.T) {
	d := usecase.InvoiceDetails{
		Invoice: entities.Invoice{
			ID:         "inv-1",
			InternalNo: 2,
			ValidFrom:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			ValidUntil: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		Label: "WEB-2",
		Lines: []billing.Line{{BookingID: "b1", Weighted: decimal.NewFromInt(3)}},
		Total: decimal.NewFromInt(3),
	}
	res := FromInvoiceDetails(d)
	if res.Label != "WEB-2" || res.ValidFrom != "2024-01-01" || res.ValidUntil != "2024-01-31" {
		t.Fatalf("unexpected invoice %+v", res)
	}
	if len(res.Lines) != 1 || res.Lines[0].BookingID != "b1" {
		t.Fatalf("unexpected lines %+v", res.Lines)
	}
}

func TestFromCustomer(t *testing.T) {
	c := entities.Customer{
		ID:            "c1",
		Name1:         "ACME",
		Name2:         "Tools",
		Address:       entities.Address{Name1: "ACME", Street: "Main 1", ZipCode: "12345", City: "Berlin"},
		Communication: &entities.Communication{Email: "info@acme.test"},
	}
	res := FromCustomer(c)
	if res.Name != "ACME Tools" {
		t.Fatalf("unexpected name %q", res.Name)
	}
	if res.FormattedAddress != "ACME, Main 1, 12345 Berlin" {
		t.Fatalf("unexpected address %q", res.FormattedAddress)
	}
	if res.FormattedCommunication != "info@acme.test" {
		t.Fatalf("unexpected communication %q", res.FormattedCommunication)
	}
}

func TestFromProject(t *testing.T) {
	res := FromProject(entities.Project{ID: "p1", MasterID: "p1", Status: entities.ProjectStatusIdle})
	if res.Status != "idle" || res.IsOpen || !res.IsMaster {
		t.Fatalf("unexpected project %+v", res)
	}
	raw, _ := json.Marshal(res)
	if !strings.Contains(string(raw), `"coefficient_saturday":null`) {
		t.Fatalf("expected null coefficient, got %s", raw)
	}
}
