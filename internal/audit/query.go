package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

// Filter narrows an audit trail page. Zero values match everything.
type Filter struct {
	Action string
	Entity string
	UserID *uint

	From *time.Time
	// To is exclusive.
	To *time.Time

	Page  int
	Limit int
}

type Reader interface {
	ListAuditLogs(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}
