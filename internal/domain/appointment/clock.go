package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
)

const (
	SlotMinutes = 15

	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	minutesPerDay = 24 * 60
)

// ParseDate accepts a calendar day in ISO form and returns it normalized.
func ParseDate(s string) (string, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_date")
	}
	return d.Format(DateLayout), nil
}

// NormalizeClock turns "9:00" or "09:00" into zero-padded "09:00".
func NormalizeClock(s string) (string, error) {
	m, err := clockMinutes(s)
	if err != nil {
		return "", err
	}
	return formatClock(m), nil
}

func clockMinutes(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_time")
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// BlockTimes lists the slot times a booking of n blocks starting at start
// occupies, in chronological order.
func BlockTimes(start string, n int) ([]string, error) {
	if n < 1 {
		return nil, httperr.ErrBusiness("invalid_blocks")
	}

	first, err := clockMinutes(start)
	if err != nil {
		return nil, err
	}
	if first%SlotMinutes != 0 {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	if first+(n-1)*SlotMinutes >= minutesPerDay {
		return nil, httperr.ErrBusiness("invalid_blocks")
	}

	times := make([]string, 0, n)
	for i := 0; i < n; i++ {
		times = append(times, formatClock(first+i*SlotMinutes))
	}
	return times, nil
}

// NowClock splits t into the date and HH:MM strings used by stored rows.
func NowClock(t time.Time) (date, clock string) {
	return t.Format(DateLayout), t.Format(ClockLayout)
}

// DaysBetween counts the calendar days from a to b.
func DaysBetween(a, b string) (int, error) {
	ta, err := time.Parse(DateLayout, a)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_date")
	}
	tb, err := time.Parse(DateLayout, b)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_date")
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}

// AddDays shifts a valid date by n calendar days.
func AddDays(date string, n int) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, n).Format(DateLayout)
}

// WeekEnd returns the Sunday that closes date's week, which is date itself
// on a Sunday.
func WeekEnd(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return t.AddDate(0, 0, 7-wd).Format(DateLayout)
}
