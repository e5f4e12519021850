package timezone

import (
	"time"
	// zone database for hosts without /usr/share/zoneinfo
	_ "time/tzdata"

	"github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
)

const DefaultTimezone = "America/Costa_Rica"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to DefaultTimezone.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// Clock reads wall time in the salon's zone. Calendar days and HH:MM
// slots come from it, never from the host's zone.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(tz string) *Clock {
	return &Clock{loc: Location(tz), now: time.Now}
}

// Fixed returns a clock stopped at t, for tests and replays.
func Fixed(t time.Time, loc *time.Location) *Clock {
	if loc == nil {
		loc = t.Location()
	}
	return &Clock{loc: loc, now: func() time.Time { return t }}
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today is the current calendar day as YYYY-MM-DD.
func (c *Clock) Today() string {
	return c.Now().Format(appointment.DateLayout)
}
