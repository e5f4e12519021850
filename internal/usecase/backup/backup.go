package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/backup"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
)

const KeyPrefix = "backups/"

// CacheFlusher drops every cached agenda day after a restore.
type CacheFlusher interface {
	Flush(ctx context.Context)
}

type CreateBackupOutput struct {
	Key          string `json:"key"`
	Size         int    `json:"size"`
	Clients      int    `json:"clients"`
	Appointments int    `json:"appointments"`
}

// ======================================================
// CREATE
// ======================================================

type CreateBackup struct {
	repo  domain.Repository
	store domain.Store
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateBackup(
	repo domain.Repository,
	store domain.Store,
	audit *audit.Dispatcher,
	now func() time.Time,
) *CreateBackup {
	return &CreateBackup{
		repo:  repo,
		store: store,
		audit: audit,
		now:   now,
	}
}

func (uc *CreateBackup) Execute(ctx context.Context, userID *uint) (*CreateBackupOutput, error) {
	if uc.store == nil {
		return nil, httperr.ErrBusiness("storage_not_configured")
	}

	snap, err := uc.repo.Dump(ctx)
	if err != nil {
		return nil, err
	}
	snap.CreatedAt = uc.now().UTC()

	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	key := fmt.Sprintf("%s%s-%s.json", KeyPrefix, snap.CreatedAt.Format("20060102T150405Z"), uuid.NewString())
	if _, err := uc.store.Put(ctx, key, data, "application/json"); err != nil {
		return nil, err
	}

	out := &CreateBackupOutput{
		Key:          key,
		Size:         len(data),
		Clients:      len(snap.Clients),
		Appointments: len(snap.Appointments),
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   audit.ActionBackupCreated,
		Entity:   "backup",
		EntityID: key,
		Metadata: out,
	})
	return out, nil
}

// ======================================================
// LIST
// ======================================================

type ListBackups struct {
	store domain.Store
}

func NewListBackups(store domain.Store) *ListBackups {
	return &ListBackups{store: store}
}

func (uc *ListBackups) Execute(ctx context.Context) ([]domain.Summary, error) {
	if uc.store == nil {
		return nil, httperr.ErrBusiness("storage_not_configured")
	}
	return uc.store.List(ctx, KeyPrefix)
}

// ======================================================
// RESTORE
// ======================================================

// RestoreBackup replaces clients, bookings, appointments and settings
// with a stored snapshot in one transaction.
type RestoreBackup struct {
	repo  domain.Repository
	store domain.Store
	cache CacheFlusher
	audit *audit.Dispatcher
}

func NewRestoreBackup(
	repo domain.Repository,
	store domain.Store,
	cache CacheFlusher,
	audit *audit.Dispatcher,
) *RestoreBackup {
	return &RestoreBackup{
		repo:  repo,
		store: store,
		cache: cache,
		audit: audit,
	}
}

func (uc *RestoreBackup) Execute(ctx context.Context, userID *uint, key string) (*domain.Snapshot, error) {
	if uc.store == nil {
		return nil, httperr.ErrBusiness("storage_not_configured")
	}
	if !strings.HasPrefix(key, KeyPrefix) || !strings.HasSuffix(key, ".json") || strings.Contains(key, "..") {
		return nil, httperr.ErrBusiness("invalid_backup_key")
	}

	data, err := uc.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, httperr.ErrBusiness("invalid_backup")
	}
	if snap.Version != domain.SnapshotVersion {
		return nil, httperr.ErrBusiness("unsupported_backup_version")
	}

	if err := uc.repo.Replace(ctx, &snap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Flush(ctx)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   audit.ActionBackupRestored,
		Entity:   "backup",
		EntityID: key,
		Metadata: map[string]int{
			"clients":      len(snap.Clients),
			"bookings":     len(snap.Bookings),
			"appointments": len(snap.Appointments),
		},
	})
	return &snap, nil
}
