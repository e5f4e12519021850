package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type memoryEntry struct {
	rows    []models.Appointment
	expires time.Time
}

// AgendaMemoryCache is the single-process fallback when no REDIS_URL is
// configured.
type AgendaMemoryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time

	// seq grows on every Invalidate and Flush. touched keeps the seq of
	// the last Invalidate per day, flushed the seq of the last Flush.
	seq     uint64
	touched map[string]uint64
	flushed uint64
}

func NewAgendaMemoryCache(ttl time.Duration) *AgendaMemoryCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &AgendaMemoryCache{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		touched: make(map[string]uint64),
		now:     time.Now,
	}
}

func (c *AgendaMemoryCache) Get(_ context.Context, date string) ([]models.Appointment, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[date]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expires) {
		delete(c.entries, date)
		return nil, false
	}
	return append([]models.Appointment(nil), e.rows...), true
}

func (c *AgendaMemoryCache) Version(_ context.Context, date string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return strconv.FormatUint(c.versionLocked(date), 10)
}

func (c *AgendaMemoryCache) versionLocked(date string) uint64 {
	return max(c.touched[date], c.flushed)
}

func (c *AgendaMemoryCache) Set(_ context.Context, date, version string, rows []models.Appointment) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if version != strconv.FormatUint(c.versionLocked(date), 10) {
		return
	}
	c.entries[date] = memoryEntry{
		rows:    append([]models.Appointment(nil), rows...),
		expires: c.now().Add(c.ttl),
	}
}

func (c *AgendaMemoryCache) Invalidate(_ context.Context, dates ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	for _, d := range dates {
		delete(c.entries, d)
		c.touched[d] = c.seq
	}
}

func (c *AgendaMemoryCache) Flush(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.flushed = c.seq
	c.entries = make(map[string]memoryEntry)
	c.touched = make(map[string]uint64)
}

var _ domain.AgendaCache = (*AgendaMemoryCache)(nil)
