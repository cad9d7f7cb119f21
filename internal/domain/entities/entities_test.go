package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestAddress_Tuple(t *testing.T) {
	adr := Address{Name1: "Max"}
	if got := adr.Tuple(true); len(got) != 1 {
		t.Fatalf("expected 1 part, got %v", got)
	}
	adr.Name2 = "Mustermann"
	adr.Name3 = "foo"
	adr.Name4 = "bar"
	adr.Street = "Musterstrasse"
	adr.City = "Musterstadt"
	adr.ZipCode = "12345"
	adr.Country = "Germany"

	if got := adr.Tuple(true); len(got) != 4 {
		t.Fatalf("expected 4 name parts, got %v", got)
	}
	got := adr.Tuple(false)
	if len(got) != 7 {
		t.Fatalf("expected 7 parts, got %v", got)
	}
	if got[5] != "12345 Musterstadt" {
		t.Fatalf("expected zip and city joined, got %q", got[5])
	}
}

func TestAddress_String(t *testing.T) {
	adr := Address{Name1: "foo", Name2: "b&r", Street: "foostreet"}
	if got := adr.String("<br />"); got != "foo<br />b&amp;r<br />foostreet" {
		t.Fatalf("unexpected html string %q", got)
	}
	if got := adr.String(", "); got != "foo, b&r, foostreet" {
		t.Fatalf("unexpected plain string %q", got)
	}
	if got := (Address{Name1: "x", City: "Berlin"}).String("|"); got != "x|Berlin" {
		t.Fatalf("unexpected city only string %q", got)
	}
}

func TestAddress_JoinName(t *testing.T) {
	adr := Address{Name1: "foo1", Name2: "foo2", Name3: "foo3", Name4: "foo4", Street: "s"}
	if got := adr.JoinName(""); got != "foo1foo2foo3foo4" {
		t.Fatalf("unexpected %q", got)
	}
	if got := adr.JoinName(" "); got != "foo1 foo2 foo3 foo4" {
		t.Fatalf("unexpected %q", got)
	}
	if got := adr.JoinName("<br />"); got != "foo1<br />foo2<br />foo3<br />foo4" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestCommunication_String(t *testing.T) {
	c := Communication{Email: "a@b.c", PhoneMobile: "0170", URL: "https://x"}
	if got := c.String(", "); got != "a@b.c, 0170, https://x" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestCustomer_JoinName(t *testing.T) {
	c := Customer{Name1: "ACME", Name3: "GmbH"}
	if got := c.JoinName(" "); got != "ACME GmbH" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestDay_Slug(t *testing.T) {
	day := NewDay("u1", time.Date(2010, 1, 12, 15, 4, 0, 0, time.UTC))
	if day.Slug() != "2010/01/12" {
		t.Fatalf("unexpected slug %q", day.Slug())
	}
	if day.ID != "u1#2010-01-12" {
		t.Fatalf("unexpected id %q", day.ID)
	}
	if day.Date.Hour() != 0 {
		t.Fatalf("expected date truncated, got %v", day.Date)
	}
}

func TestInvoice_LabelAndCovers(t *testing.T) {
	inv := Invoice{
		ID:         "inv-1",
		InternalNo: 3,
		ValidFrom:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
	if got := inv.Label("ACME"); got != "ACME-3" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := inv.Label(""); got != "inv-1" {
		t.Fatalf("unexpected fallback label %q", got)
	}
	if !inv.Covers(inv.ValidFrom) || !inv.Covers(inv.ValidUntil) {
		t.Fatalf("expected period bounds to be covered")
	}
	if inv.Covers(inv.ValidUntil.AddDate(0, 0, 1)) {
		t.Fatalf("expected day after period not covered")
	}
}

func TestCopyProject(t *testing.T) {
	src := Project{
		ID:                  "p1",
		Name:                "Website",
		Key:                 "WEB",
		Description:         "desc",
		CustomerID:          "c1",
		Status:              ProjectStatusIdle,
		MasterID:            "p0",
		CoefficientSaturday: decimal.NewNullDecimal(decimal.RequireFromString("1.5")),
	}
	cp := CopyProject(src, "PR7")
	if cp.ID != "" || cp.MasterID != "" || cp.Description != "" {
		t.Fatalf("unexpected identity fields copied: %+v", cp)
	}
	if cp.Name != "Copy of 'Website'" || cp.Key != "PR7" {
		t.Fatalf("unexpected name/key: %+v", cp)
	}
	if cp.CustomerID != "c1" || cp.Status != ProjectStatusIdle || !cp.CoefficientSaturday.Decimal.Equal(decimal.RequireFromString("1.5")) {
		t.Fatalf("expected settings copied: %+v", cp)
	}
}

func TestProjectStatus(t *testing.T) {
	for s := ProjectStatusOpen; s <= ProjectStatusClosed; s++ {
		parsed, ok := ParseProjectStatus(s.String())
		if !ok || parsed != s {
			t.Fatalf("status %d did not parse back", s)
		}
		if (Project{Status: s}).IsOpen() != (s == ProjectStatusOpen) {
			t.Fatalf("unexpected IsOpen for %s", s)
		}
	}
	if ProjectStatus(9).Valid() {
		t.Fatalf("expected invalid status")
	}
}

func TestAudit_Touch(t *testing.T) {
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	var a Audit
	a.Touch("u1", first)
	a.Touch("u2", second)
	if a.CreatedBy != "u1" || !a.Created.Equal(first) {
		t.Fatalf("creation fields changed: %+v", a)
	}
	if a.ModifiedBy != "u2" || !a.Modified.Equal(second) {
		t.Fatalf("unexpected modification fields: %+v", a)
	}
}
