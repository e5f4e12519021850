package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
)

type ValidateBookingInput struct {
	Date      string
	StartTime string
	Blocks    int

	// ExcludeBookingID checks a booking's own slots as free, as its
	// reactivation would.
	ExcludeBookingID *uuid.UUID
}

// ValidateBooking is the dry run of CreateBooking: same validator, no
// writes. It always reads the day from the store, never the cache.
type ValidateBooking struct {
	repo  domain.Repository
	hours domain.WorkHoursRepository
}

func NewValidateBooking(
	repo domain.Repository,
	hours domain.WorkHoursRepository,
) *ValidateBooking {
	return &ValidateBooking{repo: repo, hours: hours}
}

func (uc *ValidateBooking) Execute(
	ctx context.Context,
	in ValidateBookingInput,
) (domain.ValidationResult, error) {

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return domain.ValidationResult{}, err
	}
	start, err := domain.NormalizeClock(in.StartTime)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	hours, err := uc.hours.GetWorkHours(ctx)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	var exclude []uint
	if in.ExcludeBookingID != nil {
		b, err := uc.repo.GetBooking(ctx, *in.ExcludeBookingID)
		if err != nil {
			return domain.ValidationResult{}, err
		}
		exclude = domain.BlockIDs(b)
	}

	day, err := uc.repo.GetAppointmentsByDate(ctx, date)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	return domain.Validate(start, in.Blocks, day, hours, exclude...)
}
