package auditlog

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type fakeReader struct {
	listFn func(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error)
}

func (f *fakeReader) ListAuditLogs(ctx context.Context, filter audit.Filter) ([]models.AuditLog, int64, error) {
	if f.listFn == nil {
		panic("ListAuditLogs not configured")
	}
	return f.listFn(ctx, filter)
}

func TestListAuditLogs_DefaultsAndDayBounds(t *testing.T) {
	loc := time.FixedZone("CST", -6*3600)

	var got audit.Filter
	reader := &fakeReader{listFn: func(_ context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
		got = f
		return nil, 0, nil
	}}

	out, err := NewListAuditLogs(reader, loc).Execute(context.Background(), ListInput{
		From:  "2025-03-01",
		To:    "2025-03-01",
		Limit: 5000,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Page != 1 || out.Limit != defaultLimit {
		t.Fatalf("page=%d limit=%d", out.Page, out.Limit)
	}

	wantFrom := time.Date(2025, 3, 1, 0, 0, 0, 0, loc)
	if got.From == nil || !got.From.Equal(wantFrom) {
		t.Fatalf("from = %v, want %v", got.From, wantFrom)
	}
	if got.To == nil || !got.To.Equal(wantFrom.AddDate(0, 0, 1)) {
		t.Fatalf("to = %v, want next midnight", got.To)
	}
}

func TestListAuditLogs_RejectsBadDates(t *testing.T) {
	uc := NewListAuditLogs(&fakeReader{}, nil)

	if _, err := uc.Execute(context.Background(), ListInput{From: "03/01/2025"}); !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("err = %v, want invalid_date", err)
	}
	_, err := uc.Execute(context.Background(), ListInput{From: "2025-03-02", To: "2025-03-01"})
	if !httperr.IsBusiness(err, "invalid_date_range") {
		t.Fatalf("err = %v, want invalid_date_range", err)
	}
}
