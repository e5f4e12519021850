package appointment

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

func TestDashboard(t *testing.T) {
	today := []models.Appointment{
		{ID: 1, Time: "09:00", Status: "confirmed"},
		{ID: 2, Time: "10:30", Status: "canceled"},
		{ID: 3, Time: "11:00", Status: "pending"},
		{ID: 4, Time: "12:00", Status: "confirmed"},
		{ID: 5, Time: "16:00", Status: "confirmed"},
	}
	var gotFrom, gotTo string
	repo := &fakeRepo{
		GetAppointmentsByDateFn: func(_ context.Context, date string) ([]models.Appointment, error) {
			switch date {
			case "2025-03-05":
				return today, nil
			case "2025-03-06":
				return []models.Appointment{{ID: 9}}, nil
			}
			t.Fatalf("unexpected date %s", date)
			return nil, nil
		},
		GetAppointmentsBetweenFn: func(_ context.Context, from, to string) ([]models.Appointment, error) {
			gotFrom, gotTo = from, to
			return make([]models.Appointment, 7), nil
		},
	}

	out, err := NewDashboard(repo, clock).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if out.Today.Total != 5 || out.Today.Confirmed != 3 || out.Today.Pending != 1 || out.Today.Canceled != 1 {
		t.Fatalf("today = %+v", out.Today)
	}
	// now is 10:20, so 09:00 is past
	if len(out.NextToday) != 3 || out.NextToday[0].ID != 2 || out.NextToday[2].ID != 4 {
		t.Fatalf("next = %+v", out.NextToday)
	}
	if out.Periods.Today != 5 || out.Periods.Tomorrow != 1 || out.Periods.Week != 7 {
		t.Fatalf("periods = %+v", out.Periods)
	}
	if gotFrom != "2025-03-05" || gotTo != "2025-03-09" {
		t.Fatalf("week range = %s..%s", gotFrom, gotTo)
	}
}

func TestListAppointmentsBetween_RejectsBadRange(t *testing.T) {
	uc := NewListAppointmentsBetween(&fakeRepo{})

	if _, err := uc.Execute(context.Background(), "2025-03-10", "2025-03-01"); !httperr.IsBusiness(err, "invalid_date_range") {
		t.Fatalf("err = %v, want invalid_date_range", err)
	}
	if _, err := uc.Execute(context.Background(), "2024-01-01", "2025-06-01"); !httperr.IsBusiness(err, "invalid_date_range") {
		t.Fatalf("err = %v, want invalid_date_range", err)
	}
}

func TestListAppointmentsByDate_MapsRows(t *testing.T) {
	repo := &fakeRepo{GetAppointmentsByDateFn: func(context.Context, string) ([]models.Appointment, error) {
		return []models.Appointment{{ID: 1, ClientName: "Ana", Time: "09:00", Status: "pending"}}, nil
	}}

	out, err := NewListAppointmentsByDate(repo).Execute(context.Background(), "2025-03-05")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(out) != 1 || out[0].ClientName != "Ana" || out[0].Status != "pending" {
		t.Fatalf("out = %+v", out)
	}
}
