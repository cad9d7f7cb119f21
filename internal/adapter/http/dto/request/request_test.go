package request

import (
	"errors"
	"testing"
	"time"

	"inhouse/internal/domain/entities"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-01-06 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Equal(time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", d)
	}
	if _, err := ParseDate("06.01.2024"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestStatusRequest(t *testing.T) {
	s, err := StatusRequest{Status: "Idle"}.ProjectStatus()
	if err != nil || s != entities.ProjectStatusIdle {
		t.Fatalf("unexpected project status %v err=%v", s, err)
	}
	if _, err := (StatusRequest{Status: "gone"}).ProjectStatus(); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	st, err := StatusRequest{Status: "closed"}.StepStatus()
	if err != nil || st != entities.StepStatusClosed {
		t.Fatalf("unexpected step status %v err=%v", st, err)
	}
}

func TestCreateProjectRequest_ToInput(t *testing.T) {
	in, err := CreateProjectRequest{Name: "Website", Key: "WEB"}.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Status != 0 {
		t.Fatalf("expected status left to the default, got %v", in.Status)
	}

	in, err = CreateProjectRequest{Name: "Website", Key: "WEB", Status: "closed"}.ToInput()
	if err != nil || in.Status != entities.ProjectStatusClosed {
		t.Fatalf("unexpected status %v err=%v", in.Status, err)
	}

	if _, err := (CreateProjectRequest{Status: "archived"}).ToInput(); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCreateBookingRequest_ToInput(t *testing.T) {
	r := CreateBookingRequest{Date: "2024-01-06", ProjectID: "p1", Title: "Work", FromTime: " 09:00 "}

	in, err := r.ToInput("u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.UserID != "u1" {
		t.Fatalf("expected request user fallback, got %q", in.UserID)
	}
	if in.FromTime != "09:00" {
		t.Fatalf("expected trimmed from time, got %q", in.FromTime)
	}

	r.UserID = "u2"
	in, _ = r.ToInput("u1")
	if in.UserID != "u2" {
		t.Fatalf("expected explicit user, got %q", in.UserID)
	}

	r.Date = "tomorrow"
	if _, err := r.ToInput("u1"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestCreateInvoiceRequest_ToInput(t *testing.T) {
	in, err := CreateInvoiceRequest{ProjectID: "p1", ValidFrom: "2024-01-01", ValidUntil: "2024-01-31"}.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.ValidUntil.Day() != 31 {
		t.Fatalf("unexpected period %v..%v", in.ValidFrom, in.ValidUntil)
	}
	if _, err := (CreateInvoiceRequest{ValidFrom: "2024-01-01", ValidUntil: "x"}).ToInput(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestCreateProfileRequest_ToInput(t *testing.T) {
	in := CreateProfileRequest{Language: " de "}.ToInput("u1")
	if in.UserID != "u1" || in.Language != "de" {
		t.Fatalf("unexpected input %+v", in)
	}
}
