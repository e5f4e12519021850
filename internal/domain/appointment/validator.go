package appointment

import (
	"slices"

	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type Outcome string

const (
	Accepted            Outcome = "accepted"
	AcceptedWithWarning Outcome = "accepted_with_warning"
	Rejected            Outcome = "rejected"
)

type ValidationResult struct {
	Outcome         Outcome  `json:"outcome"`
	OccupiedTimes   []string `json:"occupied_times"`
	OutOfHoursTimes []string `json:"out_of_hours_times,omitempty"`
	ConflictTime    string   `json:"conflict_time,omitempty"`
}

// Validate decides whether a booking of blocks slots starting at start
// fits into a day. Only confirmed and pending rows block a slot; rows
// whose ids are in exclude are ignored, which is how a canceled row is
// re-checked against everyone else before reactivation.
//
// Out-of-hours times never reject, they only downgrade the outcome to
// AcceptedWithWarning.
func Validate(
	start string,
	blocks int,
	day []models.Appointment,
	hours WorkHours,
	exclude ...uint,
) (ValidationResult, error) {

	times, err := BlockTimes(start, blocks)
	if err != nil {
		return ValidationResult{}, err
	}

	busy := make(map[string]bool, len(day))
	for _, ap := range day {
		if !Status(ap.Status).IsActive() || slices.Contains(exclude, ap.ID) {
			continue
		}
		busy[ap.Time] = true
	}

	for _, t := range times {
		if busy[t] {
			return ValidationResult{
				Outcome:       Rejected,
				OccupiedTimes: times,
				ConflictTime:  t,
			}, nil
		}
	}

	var outside []string
	for _, t := range times {
		if hours.IsOutside(t) {
			outside = append(outside, t)
		}
	}
	if len(outside) > 0 {
		return ValidationResult{
			Outcome:         AcceptedWithWarning,
			OccupiedTimes:   times,
			OutOfHoursTimes: outside,
		}, nil
	}

	return ValidationResult{Outcome: Accepted, OccupiedTimes: times}, nil
}

// Err turns the result into the error a write path must stop on. A
// warning is only an error when the caller has not confirmed it.
func (r ValidationResult) Err(confirmOutOfHours bool) error {
	switch r.Outcome {
	case Rejected:
		return &SlotConflictError{Time: r.ConflictTime}
	case AcceptedWithWarning:
		if !confirmOutOfHours {
			return &OutOfHoursError{Times: r.OutOfHoursTimes}
		}
	}
	return nil
}
