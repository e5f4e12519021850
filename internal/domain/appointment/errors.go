package appointment

import "strings"

// SlotConflictError rejects a write because an active row already holds
// Time.
type SlotConflictError struct {
	Time string
}

func (e *SlotConflictError) Error() string {
	return "slot " + e.Time + " is already taken"
}

func (e *SlotConflictError) ErrorCode() string { return "slot_conflict" }

func (e *SlotConflictError) ErrorDetails() any {
	return map[string]string{"time": e.Time}
}

// OutOfHoursError asks the caller to confirm a booking that falls outside
// work hours.
type OutOfHoursError struct {
	Times []string
}

func (e *OutOfHoursError) Error() string {
	return "outside work hours: " + strings.Join(e.Times, ", ")
}

func (e *OutOfHoursError) ErrorCode() string { return "out_of_hours" }

func (e *OutOfHoursError) ErrorDetails() any {
	return map[string][]string{"times": e.Times}
}
