package backup

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

// SnapshotVersion is bumped whenever the snapshot layout changes.
const SnapshotVersion = 1

// Snapshot is a full copy of the salon's data.
type Snapshot struct {
	Version      int                  `json:"version"`
	CreatedAt    time.Time            `json:"created_at"`
	Settings     models.Settings      `json:"settings"`
	Clients      []models.Client      `json:"clients"`
	Bookings     []models.Booking     `json:"bookings"`
	Appointments []models.Appointment `json:"appointments"`
}

// Summary describes a stored snapshot without loading it.
type Summary struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

type Repository interface {
	// Dump reads every table in one consistent transaction.
	Dump(ctx context.Context) (*Snapshot, error)

	// Replace deletes current data and loads s, all or nothing.
	Replace(ctx context.Context, s *Snapshot) error
}

// Store keeps serialized snapshots.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Get(ctx context.Context, key string) ([]byte, error)
	List(ctx context.Context, prefix string) ([]Summary, error)
}
