package client

import (
	"strings"

	"github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/validators"
)

// Input is the editable part of a client.
type Input struct {
	Name  string
	Phone string
	Email string
	Notes string
}

// Normalize trims every field and checks the required ones. Email is
// optional but must be well formed when present.
func Normalize(in Input) (Input, error) {
	out := Input{
		Name:  strings.TrimSpace(in.Name),
		Phone: strings.TrimSpace(in.Phone),
		Email: strings.TrimSpace(in.Email),
		Notes: strings.TrimSpace(in.Notes),
	}
	if out.Name == "" || out.Phone == "" {
		return Input{}, httperr.ErrBusiness("required_field_missing")
	}
	if out.Email != "" {
		email, ok := validators.NormalizeEmail(out.Email)
		if !ok {
			return Input{}, httperr.ErrBusiness("invalid_email")
		}
		out.Email = email
	}
	return out, nil
}

// NameKey is the form used to compare names for uniqueness.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Stats counts a client's appointment rows per status.
type Stats struct {
	Total     int64 `json:"total"`
	Confirmed int64 `json:"confirmed"`
	Pending   int64 `json:"pending"`
	Canceled  int64 `json:"canceled"`
}

// StatsFromCounts folds GROUP BY status counts. Unknown statuses still
// count towards the total.
func StatsFromCounts(counts map[string]int64) Stats {
	var s Stats
	for status, n := range counts {
		s.Total += n
		switch appointment.Status(status) {
		case appointment.StatusConfirmed:
			s.Confirmed = n
		case appointment.StatusPending:
			s.Pending = n
		case appointment.StatusCanceled:
			s.Canceled = n
		}
	}
	return s
}

// DedupNotes drops blank notes and continuation markers and keeps the
// first occurrence of each remaining note.
func DedupNotes(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, n := range raw {
		n = strings.TrimSpace(n)
		if n == "" || n == appointment.ContinuationMarker {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
