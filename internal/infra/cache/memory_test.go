package cache

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

func TestAgendaMemoryCache_SetGetInvalidate(t *testing.T) {
	c := NewAgendaMemoryCache(time.Minute)
	ctx := context.Background()

	if _, ok := c.Get(ctx, "2025-03-01"); ok {
		t.Fatalf("empty cache must miss")
	}

	rows := []models.Appointment{{ID: 1, Date: "2025-03-01", Time: "09:00"}}
	c.Set(ctx, "2025-03-01", c.Version(ctx, "2025-03-01"), rows)
	rows[0].Time = "changed"

	got, ok := c.Get(ctx, "2025-03-01")
	if !ok || len(got) != 1 || got[0].Time != "09:00" {
		t.Fatalf("got %+v, %v", got, ok)
	}

	c.Invalidate(ctx, "2025-03-01")
	if _, ok := c.Get(ctx, "2025-03-01"); ok {
		t.Fatalf("invalidated entry must miss")
	}
}

func TestAgendaMemoryCache_Expires(t *testing.T) {
	c := NewAgendaMemoryCache(time.Minute)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	c.Set(ctx, "2025-03-01", c.Version(ctx, "2025-03-01"), nil)
	now = now.Add(2 * time.Minute)

	if _, ok := c.Get(ctx, "2025-03-01"); ok {
		t.Fatalf("expired entry must miss")
	}
}

func TestAgendaMemoryCache_Flush(t *testing.T) {
	c := NewAgendaMemoryCache(time.Minute)
	ctx := context.Background()

	c.Set(ctx, "2025-03-01", c.Version(ctx, "2025-03-01"), nil)
	c.Set(ctx, "2025-03-02", c.Version(ctx, "2025-03-02"), nil)
	c.Flush(ctx)

	if _, ok := c.Get(ctx, "2025-03-02"); ok {
		t.Fatalf("flushed entry must miss")
	}
}

func TestAgendaMemoryCache_StaleVersionIsDropped(t *testing.T) {
	c := NewAgendaMemoryCache(time.Minute)
	ctx := context.Background()

	v := c.Version(ctx, "2025-03-01")
	c.Invalidate(ctx, "2025-03-01")
	c.Set(ctx, "2025-03-01", v, []models.Appointment{{ID: 1}})
	if _, ok := c.Get(ctx, "2025-03-01"); ok {
		t.Fatalf("rows read before an invalidate must not be cached")
	}

	other := c.Version(ctx, "2025-03-02")
	c.Invalidate(ctx, "2025-03-01")
	c.Set(ctx, "2025-03-02", other, nil)
	if _, ok := c.Get(ctx, "2025-03-02"); !ok {
		t.Fatalf("invalidating another day must not block this one")
	}

	v = c.Version(ctx, "2025-03-03")
	c.Flush(ctx)
	c.Set(ctx, "2025-03-03", v, nil)
	if _, ok := c.Get(ctx, "2025-03-03"); ok {
		t.Fatalf("rows read before a flush must not be cached")
	}

	c.Set(ctx, "2025-03-03", c.Version(ctx, "2025-03-03"), nil)
	if _, ok := c.Get(ctx, "2025-03-03"); !ok {
		t.Fatalf("fresh version must be cached")
	}
}
