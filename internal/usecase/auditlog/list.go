package auditlog

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

type ListInput struct {
	Action string
	Entity string
	UserID *uint

	// From and To are calendar dates, both inclusive.
	From string
	To   string

	Page  int
	Limit int
}

type ListOutput struct {
	Logs  []models.AuditLog
	Page  int
	Limit int
	Total int64
}

type ListAuditLogs struct {
	reader audit.Reader
	loc    *time.Location
}

// NewListAuditLogs interprets date bounds in loc, the salon's timezone.
func NewListAuditLogs(reader audit.Reader, loc *time.Location) *ListAuditLogs {
	if loc == nil {
		loc = time.UTC
	}
	return &ListAuditLogs{reader: reader, loc: loc}
}

func (uc *ListAuditLogs) Execute(ctx context.Context, in ListInput) (*ListOutput, error) {
	f := audit.Filter{
		Action: in.Action,
		Entity: in.Entity,
		UserID: in.UserID,
		Page:   in.Page,
		Limit:  in.Limit,
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > maxLimit {
		f.Limit = defaultLimit
	}

	if in.From != "" {
		from, err := uc.dayStart(in.From)
		if err != nil {
			return nil, err
		}
		f.From = &from
	}
	if in.To != "" {
		to, err := uc.dayStart(in.To)
		if err != nil {
			return nil, err
		}
		to = to.AddDate(0, 0, 1)
		f.To = &to
	}
	if f.From != nil && f.To != nil && !f.From.Before(*f.To) {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}

	logs, total, err := uc.reader.ListAuditLogs(ctx, f)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Logs: logs, Page: f.Page, Limit: f.Limit, Total: total}, nil
}

func (uc *ListAuditLogs) dayStart(date string) (time.Time, error) {
	date, err := domain.ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(domain.DateLayout, date, uc.loc)
}
