package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

func TestNewBooking_CascadesNotes(t *testing.T) {
	times, err := BlockTimes("09:00", 3)
	if err != nil {
		t.Fatalf("BlockTimes error: %v", err)
	}

	b := NewBooking(7, "2026-03-02", times, "Corte y barba")

	if b.Blocks != 3 || b.StartTime != "09:00" {
		t.Fatalf("booking = %+v", b)
	}
	if len(b.Appointments) != 3 {
		t.Fatalf("rows = %d, want 3", len(b.Appointments))
	}

	wantTimes := []string{"09:00", "09:15", "09:30"}
	wantNotes := []string{"Corte y barba", ContinuationMarker, ContinuationMarker}
	for i, ap := range b.Appointments {
		if ap.Time != wantTimes[i] || ap.Notes != wantNotes[i] {
			t.Fatalf("row %d = %s %q", i, ap.Time, ap.Notes)
		}
		if ap.Status != string(StatusConfirmed) {
			t.Fatalf("row %d status = %q", i, ap.Status)
		}
		if ap.BookingID == nil || *ap.BookingID != b.ID {
			t.Fatalf("row %d not linked to booking", i)
		}
		if ap.ClientID != 7 || ap.Date != "2026-03-02" {
			t.Fatalf("row %d = %+v", i, ap)
		}
	}
}

func TestCancelAll_KeepsNotesAndTouchesEveryBlock(t *testing.T) {
	b := &models.Booking{Appointments: []models.Appointment{
		{ID: 1, Time: "09:00", Status: "confirmed", Notes: "Tinte"},
		{ID: 2, Time: "09:15", Status: "pending", Notes: ContinuationMarker},
	}}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	CancelAll(b, now)

	for _, ap := range b.Appointments {
		if ap.Status != string(StatusCanceled) {
			t.Fatalf("row %d status = %q", ap.ID, ap.Status)
		}
		if !ap.CreatedAt.Equal(now) {
			t.Fatalf("row %d modified = %v", ap.ID, ap.CreatedAt)
		}
	}
	if b.Appointments[0].Notes != "Tinte" {
		t.Fatalf("notes = %q", b.Appointments[0].Notes)
	}
}

func TestNeedsAvailabilityCheck(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusCanceled, StatusConfirmed, true},
		{StatusCanceled, StatusPending, true},
		{StatusCanceled, StatusCanceled, false},
		{StatusPending, StatusConfirmed, false},
		{StatusConfirmed, StatusCanceled, false},
	}
	for _, tc := range cases {
		if got := NeedsAvailabilityCheck(tc.from, tc.to); got != tc.want {
			t.Fatalf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
