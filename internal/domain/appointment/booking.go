package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

// NewBooking assembles a booking and its ordered block rows. The rows
// are linked to the booking id so they can be inserted in any order.
func NewBooking(clientID uint, date string, times []string, notes string) *models.Booking {
	b := &models.Booking{
		ID:        uuid.New(),
		ClientID:  clientID,
		Date:      date,
		StartTime: times[0],
		Blocks:    len(times),
	}

	rows := PlanBlocks(clientID, date, times, notes)
	for i := range rows {
		id := b.ID
		rows[i].BookingID = &id
	}
	b.Appointments = rows
	return b
}

// BlockIDs lists the row ids of a loaded booking.
func BlockIDs(b *models.Booking) []uint {
	ids := make([]uint, 0, len(b.Appointments))
	for _, ap := range b.Appointments {
		ids = append(ids, ap.ID)
	}
	return ids
}

// BlockTimesOf lists the slot times held by a loaded booking.
func BlockTimesOf(b *models.Booking) []string {
	times := make([]string, 0, len(b.Appointments))
	for _, ap := range b.Appointments {
		times = append(times, ap.Time)
	}
	return times
}

// NeedsBookingCheck is true when at least one block would move from
// canceled into an active status.
func NeedsBookingCheck(b *models.Booking, next Status) bool {
	for _, ap := range b.Appointments {
		if NeedsAvailabilityCheck(Status(ap.Status), next) {
			return true
		}
	}
	return false
}

// SetBookingStatus moves every block to next. Notes are kept so the first
// block keeps the service and the rest keep the marker.
func SetBookingStatus(b *models.Booking, next Status, now time.Time) {
	for i := range b.Appointments {
		ap := &b.Appointments[i]
		ApplyStatus(ap, next, ap.Notes, now)
	}
}

// CancelAll cancels every block of the booking.
func CancelAll(b *models.Booking, now time.Time) {
	SetBookingStatus(b, StatusCanceled, now)
}
