package appointment

import "github.com/BruksfildServices01/salon-agenda/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCanceled  Status = "canceled"
)

// ContinuationMarker is the notes value of every block after the first
// in a multi-block booking.
const ContinuationMarker = "Continuación"

// ===============================
// Validations
// ===============================

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusConfirmed, StatusPending, StatusCanceled:
		return st, nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// IsActive reports whether a row in this status occupies its slot.
func (s Status) IsActive() bool {
	return s == StatusConfirmed || s == StatusPending
}

// NeedsAvailabilityCheck is true when moving from current to next could
// put a second active row on an occupied slot.
func NeedsAvailabilityCheck(current, next Status) bool {
	return current == StatusCanceled && next.IsActive()
}

func InitialStatus() Status {
	return StatusConfirmed
}
