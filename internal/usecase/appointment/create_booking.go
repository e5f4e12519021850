package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID *uint

	ClientID  uint
	Date      string
	StartTime string
	Blocks    int
	Notes     string

	// ConfirmOutOfHours accepts a booking the validator only warned about.
	ConfirmOutOfHours bool
}

type CreateBookingOutput struct {
	Booking    *models.Booking         `json:"booking"`
	Validation domain.ValidationResult `json:"validation"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	hours domain.WorkHoursRepository
	cache domain.AgendaCache
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	hours domain.WorkHoursRepository,
	cache domain.AgendaCache,
	audit *audit.Dispatcher,
	now func() time.Time,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		hours: hours,
		cache: cache,
		audit: audit,
		now:   now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*CreateBookingOutput, error) {

	// --------------------------------------------------
	// 1️⃣ Entrada (data, hora, blocos)
	// --------------------------------------------------
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	start, err := domain.NormalizeClock(in.StartTime)
	if err != nil {
		return nil, err
	}
	if _, err := domain.BlockTimes(start, in.Blocks); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Horário de funcionamento
	// --------------------------------------------------
	hours, err := uc.hours.GetWorkHours(ctx)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Validação + gravação sob o lock do dia
	// --------------------------------------------------
	var (
		booking *models.Booking
		result  domain.ValidationResult
	)
	err = uc.repo.WithDayLock(ctx, date, func(tx domain.Repository) error {
		ok, err := tx.ClientExists(ctx, in.ClientID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.ErrBusiness("client_not_found")
		}

		day, err := tx.GetAppointmentsByDate(ctx, date)
		if err != nil {
			return err
		}

		result, err = domain.Validate(start, in.Blocks, day, hours)
		if err != nil {
			return err
		}
		if err := result.Err(in.ConfirmOutOfHours); err != nil {
			return err
		}

		booking = domain.NewBooking(in.ClientID, date, result.OccupiedTimes, in.Notes)
		booking.CreatedAt = uc.now()
		if err := tx.InsertBooking(ctx, booking); err != nil {
			return err
		}
		for i := range booking.Appointments {
			booking.Appointments[i].CreatedAt = booking.CreatedAt
			if err := tx.InsertAppointment(ctx, &booking.Appointments[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Cache da agenda
	// --------------------------------------------------
	invalidate(ctx, uc.cache, date)

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: booking.ID.String(),
		Metadata: map[string]any{
			"client_id": in.ClientID,
			"date":      date,
			"times":     result.OccupiedTimes,
			"outcome":   result.Outcome,
		},
	})

	return &CreateBookingOutput{Booking: booking, Validation: result}, nil
}
