package appointment

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

const SlotAvailable = "available"

// TimeSlot is one position of the day grid. Occupant fields are empty
// for available slots.
type TimeSlot struct {
	Time          string     `json:"time"`
	Status        string     `json:"status"`
	ClientName    string     `json:"client_name,omitempty"`
	Service       string     `json:"service,omitempty"`
	AppointmentID *uint      `json:"appointment_id,omitempty"`
	BookingID     *uuid.UUID `json:"booking_id,omitempty"`
}

// BuildSlots lays a day's rows over a 15-minute grid from startHour:00
// up to but excluding endHour:00.
//
// Per slot, the first confirmed row wins, then the first pending one, then
// the first canceled one. "First" is input order, so callers pass rows as
// the gateway returns them (time ASC, most recently modified first).
func BuildSlots(appts []models.Appointment, startHour, endHour int) []TimeSlot {
	if startHour < 0 {
		startHour = 0
	}
	if endHour > 24 {
		endHour = 24
	}
	if endHour <= startHour {
		return []TimeSlot{}
	}

	byTime := make(map[string][]*models.Appointment, len(appts))
	for i := range appts {
		ap := &appts[i]
		byTime[ap.Time] = append(byTime[ap.Time], ap)
	}

	slots := make([]TimeSlot, 0, (endHour-startHour)*60/SlotMinutes)
	for m := startHour * 60; m < endHour*60; m += SlotMinutes {
		t := formatClock(m)
		slots = append(slots, resolveSlot(t, byTime[t]))
	}
	return slots
}

func resolveSlot(t string, matches []*models.Appointment) TimeSlot {
	for _, want := range []Status{StatusConfirmed, StatusPending, StatusCanceled} {
		for _, ap := range matches {
			if Status(ap.Status) != want {
				continue
			}
			id := ap.ID
			return TimeSlot{
				Time:          t,
				Status:        ap.Status,
				ClientName:    ap.ClientName,
				Service:       ap.Notes,
				AppointmentID: &id,
				BookingID:     ap.BookingID,
			}
		}
	}
	return TimeSlot{Time: t, Status: SlotAvailable}
}
