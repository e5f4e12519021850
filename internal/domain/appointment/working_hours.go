package appointment

import "github.com/BruksfildServices01/salon-agenda/internal/httperr"

const (
	DefaultWorkStart = "09:00"
	DefaultWorkEnd   = "17:00"
)

// WorkHours is the salon's advisory operating window. It never hides
// slots; it only decides which bookings get an out-of-hours warning.
type WorkHours struct {
	Start string `json:"work_start"`
	End   string `json:"work_end"`
}

func DefaultWorkHours() WorkHours {
	return WorkHours{Start: DefaultWorkStart, End: DefaultWorkEnd}
}

// NewWorkHours validates and normalizes a start/end pair.
func NewWorkHours(start, end string) (WorkHours, error) {
	s, err := NormalizeClock(start)
	if err != nil {
		return WorkHours{}, httperr.ErrBusiness("invalid_work_hours")
	}
	e, err := NormalizeClock(end)
	if err != nil {
		return WorkHours{}, httperr.ErrBusiness("invalid_work_hours")
	}
	if s >= e {
		return WorkHours{}, httperr.ErrBusiness("invalid_work_hours")
	}
	return WorkHours{Start: s, End: e}, nil
}

// IsOutside reports whether a zero-padded HH:MM time falls outside
// [Start, End).
func (w WorkHours) IsOutside(t string) bool {
	return t < w.Start || t >= w.End
}

// GridHours returns the hour range used to seed the slot grid: the start
// hour rounded down and the end hour rounded up.
func (w WorkHours) GridHours() (startHour, endHour int) {
	s, err := clockMinutes(w.Start)
	if err != nil {
		s = 9 * 60
	}
	e, err := clockMinutes(w.End)
	if err != nil {
		e = 17 * 60
	}

	startHour = s / 60
	endHour = (e + 59) / 60
	if endHour <= startHour {
		endHour = startHour + 1
	}
	return startHour, endHour
}
