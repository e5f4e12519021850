package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-agenda/internal/dto"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

const nextTodayLimit = 3

type DayStats struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Canceled  int `json:"canceled"`
}

type PeriodCounts struct {
	Today    int `json:"today"`
	Tomorrow int `json:"tomorrow"`
	Week     int `json:"week"`
}

type DashboardOutput struct {
	Date      string                   `json:"date"`
	Now       string                   `json:"now"`
	Today     DayStats                 `json:"today"`
	NextToday []dto.AppointmentListDTO `json:"next_today"`
	Periods   PeriodCounts             `json:"periods"`
}

// Dashboard summarizes today in the salon's timezone. Counts include
// every row in any status.
type Dashboard struct {
	repo domain.Repository
	now  func() time.Time
}

func NewDashboard(repo domain.Repository, now func() time.Time) *Dashboard {
	return &Dashboard{repo: repo, now: now}
}

func (uc *Dashboard) Execute(ctx context.Context) (*DashboardOutput, error) {
	today, clock := domain.NowClock(uc.now())

	todayRows, err := uc.repo.GetAppointmentsByDate(ctx, today)
	if err != nil {
		return nil, err
	}

	out := &DashboardOutput{Date: today, Now: clock}
	out.Today.Total = len(todayRows)
	for _, ap := range todayRows {
		switch domain.Status(ap.Status) {
		case domain.StatusConfirmed:
			out.Today.Confirmed++
		case domain.StatusPending:
			out.Today.Pending++
		case domain.StatusCanceled:
			out.Today.Canceled++
		}
	}

	// rows are in time order already
	var next []models.Appointment
	for _, ap := range todayRows {
		if ap.Time < clock {
			continue
		}
		next = append(next, ap)
		if len(next) == nextTodayLimit {
			break
		}
	}
	out.NextToday = dto.AppointmentList(next)

	tomorrowRows, err := uc.repo.GetAppointmentsByDate(ctx, domain.AddDays(today, 1))
	if err != nil {
		return nil, err
	}
	weekRows, err := uc.repo.GetAppointmentsBetween(ctx, today, domain.WeekEnd(today))
	if err != nil {
		return nil, err
	}

	out.Periods = PeriodCounts{
		Today:    len(todayRows),
		Tomorrow: len(tomorrowRows),
		Week:     len(weekRows),
	}
	return out, nil
}
