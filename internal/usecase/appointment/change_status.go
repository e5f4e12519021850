package appointment

import (
	"context"
	"strconv"
	"time"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type ChangeStatusInput struct {
	UserID *uint

	AppointmentID uint
	Status        string

	// Notes replaces the row's notes; nil keeps them.
	Notes *string
}

// ChangeStatus moves one row. Rows of a booking can still be changed one
// by one; ChangeBookingStatus moves them together.
type ChangeStatus struct {
	repo  domain.Repository
	hours domain.WorkHoursRepository
	cache domain.AgendaCache
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewChangeStatus(
	repo domain.Repository,
	hours domain.WorkHoursRepository,
	cache domain.AgendaCache,
	audit *audit.Dispatcher,
	now func() time.Time,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		hours: hours,
		cache: cache,
		audit: audit,
		now:   now,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	in ChangeStatusInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Status de destino
	// --------------------------------------------------
	next, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Agendamento atual + horário de funcionamento
	// --------------------------------------------------
	current, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	hours, err := uc.hours.GetWorkHours(ctx)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Reativação revalida o horário (lock do dia)
	// --------------------------------------------------
	var (
		ap   *models.Appointment
		from string
	)
	err = uc.repo.WithDayLock(ctx, current.Date, func(tx domain.Repository) error {
		ap, err = tx.GetAppointment(ctx, in.AppointmentID)
		if err != nil {
			return err
		}
		from = ap.Status

		if domain.NeedsAvailabilityCheck(domain.Status(ap.Status), next) {
			day, err := tx.GetAppointmentsByDate(ctx, ap.Date)
			if err != nil {
				return err
			}
			res, err := domain.Validate(ap.Time, 1, day, hours, ap.ID)
			if err != nil {
				return err
			}
			// the slot was booked before, so only a conflict stops it
			if err := res.Err(true); err != nil {
				return err
			}
		}

		notes := ap.Notes
		if in.Notes != nil {
			notes = *in.Notes
		}
		domain.ApplyStatus(ap, next, notes, uc.now())
		return tx.UpdateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Cache da agenda
	// --------------------------------------------------
	invalidate(ctx, uc.cache, ap.Date)

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   audit.ActionStatusChanged,
		Entity:   "appointment",
		EntityID: strconv.FormatUint(uint64(ap.ID), 10),
		Metadata: map[string]string{"from": from, "to": ap.Status},
	})

	return ap, nil
}
