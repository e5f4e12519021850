package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type ChangeBookingStatusInput struct {
	UserID *uint

	BookingID uuid.UUID
	Status    string
}

// ChangeBookingStatus applies one status to every block of a booking in a
// single transaction.
type ChangeBookingStatus struct {
	repo  domain.Repository
	hours domain.WorkHoursRepository
	cache domain.AgendaCache
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewChangeBookingStatus(
	repo domain.Repository,
	hours domain.WorkHoursRepository,
	cache domain.AgendaCache,
	audit *audit.Dispatcher,
	now func() time.Time,
) *ChangeBookingStatus {
	return &ChangeBookingStatus{
		repo:  repo,
		hours: hours,
		cache: cache,
		audit: audit,
		now:   now,
	}
}

func (uc *ChangeBookingStatus) Execute(
	ctx context.Context,
	in ChangeBookingStatusInput,
) (*models.Booking, error) {

	next, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	b, err := uc.apply(ctx, in.BookingID, next)
	if err != nil {
		return nil, err
	}

	action := audit.ActionStatusChanged
	if next == domain.StatusCanceled {
		action = audit.ActionBookingCanceled
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   action,
		Entity:   "booking",
		EntityID: b.ID.String(),
		Metadata: map[string]any{"to": next, "blocks": len(b.Appointments)},
	})

	return b, nil
}

func (uc *ChangeBookingStatus) apply(
	ctx context.Context,
	id uuid.UUID,
	next domain.Status,
) (*models.Booking, error) {

	current, err := uc.repo.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	hours, err := uc.hours.GetWorkHours(ctx)
	if err != nil {
		return nil, err
	}

	var b *models.Booking
	err = uc.repo.WithDayLock(ctx, current.Date, func(tx domain.Repository) error {
		b, err = tx.GetBooking(ctx, id)
		if err != nil {
			return err
		}
		if len(b.Appointments) == 0 {
			return nil
		}

		if domain.NeedsBookingCheck(b, next) {
			day, err := tx.GetAppointmentsByDate(ctx, b.Date)
			if err != nil {
				return err
			}
			res, err := domain.Validate(
				b.Appointments[0].Time,
				len(b.Appointments),
				day,
				hours,
				domain.BlockIDs(b)...,
			)
			if err != nil {
				return err
			}
			if err := res.Err(true); err != nil {
				return err
			}
		}

		domain.SetBookingStatus(b, next, uc.now())
		for i := range b.Appointments {
			if err := tx.UpdateAppointment(ctx, &b.Appointments[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidate(ctx, uc.cache, b.Date)
	return b, nil
}

// CancelBooking cancels every block of a booking at once.
type CancelBooking struct {
	inner *ChangeBookingStatus
}

func NewCancelBooking(inner *ChangeBookingStatus) *CancelBooking {
	return &CancelBooking{inner: inner}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	userID *uint,
	bookingID uuid.UUID,
) (*models.Booking, error) {
	return uc.inner.Execute(ctx, ChangeBookingStatusInput{
		UserID:    userID,
		BookingID: bookingID,
		Status:    string(domain.StatusCanceled),
	})
}
