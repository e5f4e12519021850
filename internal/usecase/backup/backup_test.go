package backup

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/backup"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type fakeRepo struct {
	DumpFn    func(ctx context.Context) (*domain.Snapshot, error)
	ReplaceFn func(ctx context.Context, s *domain.Snapshot) error
}

func (f *fakeRepo) Dump(ctx context.Context) (*domain.Snapshot, error) {
	if f.DumpFn == nil {
		panic("DumpFn not set")
	}
	return f.DumpFn(ctx)
}

func (f *fakeRepo) Replace(ctx context.Context, s *domain.Snapshot) error {
	if f.ReplaceFn == nil {
		panic("ReplaceFn not set")
	}
	return f.ReplaceFn(ctx, s)
}

// memStore is an in-memory object store.
type memStore struct {
	objects map[string][]byte
}

func (m *memStore) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	if m.objects == nil {
		m.objects = map[string][]byte{}
	}
	m.objects[key] = data
	return "mem://" + key, nil
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	data, ok := m.objects[key]
	if !ok {
		return nil, httperr.ErrBusiness("backup_not_found")
	}
	return data, nil
}

func (m *memStore) List(_ context.Context, prefix string) ([]domain.Summary, error) {
	var out []domain.Summary
	for k, v := range m.objects {
		if strings.HasPrefix(k, prefix) {
			out = append(out, domain.Summary{Key: k, Size: int64(len(v))})
		}
	}
	return out, nil
}

type flushCounter struct{ n int }

func (f *flushCounter) Flush(context.Context) { f.n++ }

func TestCreateThenRestore(t *testing.T) {
	now := func() time.Time { return time.Date(2025, 3, 5, 18, 0, 0, 0, time.UTC) }
	snap := &domain.Snapshot{
		Version:      domain.SnapshotVersion,
		Settings:     models.Settings{ID: 1, WorkStart: "08:00", WorkEnd: "16:00"},
		Clients:      []models.Client{{ID: 1, Name: "Ana", Phone: "1"}},
		Appointments: []models.Appointment{{ID: 1, ClientID: 1, Date: "2025-03-05", Time: "09:00", Status: "confirmed"}},
	}

	var restored *domain.Snapshot
	repo := &fakeRepo{
		DumpFn: func(context.Context) (*domain.Snapshot, error) { return snap, nil },
		ReplaceFn: func(_ context.Context, s *domain.Snapshot) error {
			restored = s
			return nil
		},
	}
	store := &memStore{}
	flush := &flushCounter{}
	ctx := context.Background()

	out, err := NewCreateBackup(repo, store, nil, now).Execute(ctx, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(out.Key, "backups/20250305T180000Z-") || out.Clients != 1 || out.Appointments != 1 {
		t.Fatalf("out = %+v", out)
	}

	list, err := NewListBackups(store).Execute(ctx)
	if err != nil || len(list) != 1 || list[0].Key != out.Key {
		t.Fatalf("list = %+v, %v", list, err)
	}

	if _, err := NewRestoreBackup(repo, store, flush, nil).Execute(ctx, nil, out.Key); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored == nil || len(restored.Clients) != 1 || restored.Settings.WorkStart != "08:00" {
		t.Fatalf("restored = %+v", restored)
	}
	if flush.n != 1 {
		t.Fatalf("cache flushed %d times, want 1", flush.n)
	}
}

func TestRestore_RejectsBadInput(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()
	store.Put(ctx, "backups/garbage.json", []byte("{not json"), "")
	old, _ := json.Marshal(domain.Snapshot{Version: 99})
	store.Put(ctx, "backups/old.json", old, "")

	// Replace must never be reached
	uc := NewRestoreBackup(&fakeRepo{}, store, nil, nil)

	cases := map[string]string{
		"clients/1.webp":       "invalid_backup_key",
		"backups/../x.json":    "invalid_backup_key",
		"backups/missing.json": "backup_not_found",
		"backups/garbage.json": "invalid_backup",
		"backups/old.json":     "unsupported_backup_version",
	}
	for key, code := range cases {
		if _, err := uc.Execute(ctx, nil, key); !httperr.IsBusiness(err, code) {
			t.Fatalf("%s: err = %v, want %s", key, err, code)
		}
	}
}

func TestBackups_RequireStore(t *testing.T) {
	ctx := context.Background()

	if _, err := NewCreateBackup(&fakeRepo{}, nil, nil, time.Now).Execute(ctx, nil); !httperr.IsBusiness(err, "storage_not_configured") {
		t.Fatalf("create err = %v", err)
	}
	if _, err := NewListBackups(nil).Execute(ctx); !httperr.IsBusiness(err, "storage_not_configured") {
		t.Fatalf("list err = %v", err)
	}
}
