package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

// Repository is the persistence gateway for appointment rows and
// bookings.
type Repository interface {
	// -------- Transactions --------

	// WithDayLock runs fn in one transaction that holds the write lock for
	// date. Reads made through tx see every booking committed before it.
	WithDayLock(
		ctx context.Context,
		date string,
		fn func(tx Repository) error,
	) error

	// -------- Client --------
	ClientExists(
		ctx context.Context,
		clientID uint,
	) (bool, error)

	// -------- Appointment (reads) --------

	// GetAppointmentsByDate orders rows by time ascending, then most
	// recently modified first.
	GetAppointmentsByDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	GetAppointmentsBetween(
		ctx context.Context,
		startDate string,
		endDate string,
	) ([]models.Appointment, error)

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// -------- Appointment (writes) --------
	InsertAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Booking --------
	InsertBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Booking, error)
}

// WorkHoursRepository reads and writes the singleton settings row.
type WorkHoursRepository interface {
	GetWorkHours(ctx context.Context) (WorkHours, error)
	UpdateWorkHours(ctx context.Context, hours WorkHours) error
}

// AgendaCache keeps the rows of recently viewed days. It is never read
// on a write path.
//
// Version is read before loading rows from the database and handed back
// to Set. Set keeps the rows only while no Invalidate or Flush touched
// the day in between, so a read racing a write cannot cache the older
// rows.
type AgendaCache interface {
	Get(ctx context.Context, date string) ([]models.Appointment, bool)
	Version(ctx context.Context, date string) string
	Set(ctx context.Context, date, version string, rows []models.Appointment)
	Invalidate(ctx context.Context, dates ...string)
}
