package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type GetAgendaInput struct {
	Date string

	// nil hours fall back to the work hours grid
	StartHour *int
	EndHour   *int

	// Status keeps only slots in that state: available or a row status.
	Status string
}

type AgendaOutput struct {
	Date      string            `json:"date"`
	StartHour int               `json:"start_hour"`
	EndHour   int               `json:"end_hour"`
	WorkHours domain.WorkHours  `json:"work_hours"`
	Slots     []domain.TimeSlot `json:"slots"`
}

// GetAgenda builds the slot grid of one day. Rows are read through the
// agenda cache when one is configured.
type GetAgenda struct {
	repo  domain.Repository
	hours domain.WorkHoursRepository
	cache domain.AgendaCache
}

func NewGetAgenda(
	repo domain.Repository,
	hours domain.WorkHoursRepository,
	cache domain.AgendaCache,
) *GetAgenda {
	return &GetAgenda{repo: repo, hours: hours, cache: cache}
}

func (uc *GetAgenda) Execute(
	ctx context.Context,
	in GetAgendaInput,
) (*AgendaOutput, error) {

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if in.Status, err = parseSlotFilter(in.Status); err != nil {
		return nil, err
	}

	hours, err := uc.hours.GetWorkHours(ctx)
	if err != nil {
		return nil, err
	}

	startHour, endHour := hours.GridHours()
	if in.StartHour != nil {
		startHour = *in.StartHour
	}
	if in.EndHour != nil {
		endHour = *in.EndHour
	}

	rows, err := uc.rows(ctx, date)
	if err != nil {
		return nil, err
	}

	slots := domain.BuildSlots(rows, startHour, endHour)
	if in.Status != "" {
		slots = filterSlots(slots, in.Status)
	}

	return &AgendaOutput{
		Date:      date,
		StartHour: startHour,
		EndHour:   endHour,
		WorkHours: hours,
		Slots:     slots,
	}, nil
}

func parseSlotFilter(s string) (string, error) {
	if s == "" || s == domain.SlotAvailable {
		return s, nil
	}
	st, err := domain.ParseStatus(s)
	if err != nil {
		return "", err
	}
	return string(st), nil
}

func filterSlots(slots []domain.TimeSlot, status string) []domain.TimeSlot {
	out := make([]domain.TimeSlot, 0, len(slots))
	for _, s := range slots {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out
}

func (uc *GetAgenda) rows(ctx context.Context, date string) ([]models.Appointment, error) {
	if uc.cache != nil {
		if rows, ok := uc.cache.Get(ctx, date); ok {
			return rows, nil
		}
	}

	var version string
	if uc.cache != nil {
		version = uc.cache.Version(ctx, date)
	}

	rows, err := uc.repo.GetAppointmentsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, date, version, rows)
	}
	return rows, nil
}
