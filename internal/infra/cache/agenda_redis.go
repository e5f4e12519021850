package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

const (
	agendaKeyPrefix   = "agenda:"
	versionKeyPrefix  = "agenda-version:"
	epochKey          = "agenda-epoch"
	versionKeyTTL     = 24 * time.Hour
	versionUnreadable = ""
)

// setIfVersionScript stores KEYS[3] only while the epoch and the day
// version still read as ARGV[1].
var setIfVersionScript = redis.NewScript(`
local epoch = redis.call("GET", KEYS[1]) or "0"
local ver = redis.call("GET", KEYS[2]) or "0"
if epoch .. ":" .. ver ~= ARGV[1] then
  return 0
end
redis.call("SET", KEYS[3], ARGV[2], "PX", ARGV[3])
return 1
`)

// AgendaRedisCache stores one JSON document per date. Errors are logged
// and treated as misses so the database stays the source of truth.
type AgendaRedisCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *slog.Logger
}

func NewAgendaRedisCache(rdb *redis.Client, ttl time.Duration, log *slog.Logger) *AgendaRedisCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &AgendaRedisCache{rdb: rdb, ttl: ttl, log: log}
}

func (c *AgendaRedisCache) Get(ctx context.Context, date string) ([]models.Appointment, bool) {
	raw, err := c.rdb.Get(ctx, agendaKeyPrefix+date).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("agenda cache get failed", "date", date, "err", err)
		}
		return nil, false
	}

	var rows []models.Appointment
	if err := json.Unmarshal(raw, &rows); err != nil {
		c.log.Warn("agenda cache entry corrupt", "date", date, "err", err)
		return nil, false
	}
	return rows, true
}

// Version joins the flush epoch and the day counter. A redis error
// yields a version no Set accepts.
func (c *AgendaRedisCache) Version(ctx context.Context, date string) string {
	vals, err := c.rdb.MGet(ctx, epochKey, versionKeyPrefix+date).Result()
	if err != nil {
		c.log.Warn("agenda cache version failed", "date", date, "err", err)
		return versionUnreadable
	}
	return counter(vals[0]) + ":" + counter(vals[1])
}

func counter(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return "0"
}

func (c *AgendaRedisCache) Set(ctx context.Context, date, version string, rows []models.Appointment) {
	if version == versionUnreadable {
		return
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return
	}
	keys := []string{epochKey, versionKeyPrefix + date, agendaKeyPrefix + date}
	err = setIfVersionScript.Run(ctx, c.rdb, keys, version, raw, c.ttl.Milliseconds()).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.log.Warn("agenda cache set failed", "date", date, "err", err)
	}
}

func (c *AgendaRedisCache) Invalidate(ctx context.Context, dates ...string) {
	if len(dates) == 0 {
		return
	}
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, d := range dates {
			pipe.Incr(ctx, versionKeyPrefix+d)
			pipe.Expire(ctx, versionKeyPrefix+d, versionKeyTTL)
			pipe.Del(ctx, agendaKeyPrefix+d)
		}
		return nil
	})
	if err != nil {
		c.log.Warn("agenda cache invalidate failed", "dates", dates, "err", err)
	}
}

// Flush drops every cached day, used after a restore. The epoch bump
// turns away Sets of reads that started before it.
func (c *AgendaRedisCache) Flush(ctx context.Context) {
	if err := c.rdb.Incr(ctx, epochKey).Err(); err != nil {
		c.log.Warn("agenda cache epoch bump failed", "err", err)
	}
	iter := c.rdb.Scan(ctx, 0, agendaKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.log.Warn("agenda cache scan failed", "err", err)
		return
	}
	if len(keys) > 0 {
		_ = c.rdb.Del(ctx, keys...).Err()
	}
}

var _ domain.AgendaCache = (*AgendaRedisCache)(nil)
