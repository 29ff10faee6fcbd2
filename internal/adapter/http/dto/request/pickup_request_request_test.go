package request

import (
	"errors"
	"testing"
	"time"

	"waste_pickup/internal/domain/entities"
)

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	for _, in := range []string{"2025-01-10T10:00:00Z", "2025-01-10T10:00:00", "2025-01-10T10:00", " 2025-01-10T15:30:00+05:30 "} {
		got, err := ParseTimestamp(in)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
	if _, err := ParseTimestamp("tomorrow"); !errors.Is(err, ErrInvalidTimestamp) {
		t.Fatalf("expected ErrInvalidTimestamp, got %v", err)
	}
}

func TestCreatePickupRequest_ToInput(t *testing.T) {
	r := CreatePickupRequest{
		Category:    " Recyclable ",
		Description: "cardboard",
		Quantity:    3,
		Address:     AddressRequest{Line1: " 1 Main ", City: "Pune", Pincode: "411001"},
		PreferredSlots: []SlotRequest{
			{Start: "2025-01-10T10:00", End: "2025-01-10T11:00"},
		},
	}
	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Category != entities.WasteCategoryRecyclable || in.Address.Line1 != "1 Main" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if len(in.PreferredSlots) != 1 || in.PreferredSlots[0].End.Sub(in.PreferredSlots[0].Start) != time.Hour {
		t.Fatalf("unexpected slots: %+v", in.PreferredSlots)
	}

	r.PreferredSlots[0].End = "soon"
	if _, err := r.ToInput(); !errors.Is(err, ErrInvalidTimestamp) {
		t.Fatalf("expected ErrInvalidTimestamp, got %v", err)
	}
}

func TestQueries(t *testing.T) {
	f := ListPickupRequestsQuery{Status: " scheduled ", Skip: 2, Limit: 5}.ToFilter()
	if f.Status != entities.RequestStatusScheduled || f.Skip != 2 || f.Limit != 5 {
		t.Fatalf("unexpected filter: %+v", f)
	}

	q := AvailableSlotsQuery{Date: "2025-01-10", Category: "E-WASTE"}
	day, err := q.Day()
	if err != nil || day.Day() != 10 {
		t.Fatalf("unexpected day %v err=%v", day, err)
	}
	if q.WasteCategory() != entities.WasteCategoryEWaste {
		t.Fatalf("unexpected category %q", q.WasteCategory())
	}
	if _, err := (AvailableSlotsQuery{Date: "10/01/2025"}).Day(); err == nil {
		t.Fatalf("expected parse error")
	}
	if got := (TransitionRequest{Status: " Completed "}).Target(); got != entities.RequestStatusCompleted {
		t.Fatalf("unexpected target %q", got)
	}
}
