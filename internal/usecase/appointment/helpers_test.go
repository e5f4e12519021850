package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/salon-agenda/internal/db"
	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

var fixedNow = time.Date(2025, 3, 5, 10, 20, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type env struct {
	db    *gorm.DB
	repo  *repository.AppointmentGormRepository
	hours *repository.SettingsGormRepository
	cache *recordingCache
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return &env{
		db:    db,
		repo:  repository.NewAppointmentGormRepository(db),
		hours: repository.NewSettingsGormRepository(db),
		cache: &recordingCache{},
	}
}

func (e *env) client(t *testing.T, name string) uint {
	t.Helper()

	c := models.Client{Name: name, Phone: "555"}
	if err := e.db.Create(&c).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return c.ID
}

func (e *env) row(t *testing.T, clientID uint, date, at, status string) models.Appointment {
	t.Helper()

	ap := models.Appointment{ClientID: clientID, Date: date, Time: at, Status: status}
	if err := e.db.Omit("Client").Create(&ap).Error; err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	return ap
}

func (e *env) reload(t *testing.T, id uint) models.Appointment {
	t.Helper()

	var ap models.Appointment
	if err := e.db.First(&ap, id).Error; err != nil {
		t.Fatalf("reload %d: %v", id, err)
	}
	return ap
}

func (e *env) count(t *testing.T, date string) int64 {
	t.Helper()

	var n int64
	e.db.Model(&models.Appointment{}).Where("date = ?", date).Count(&n)
	return n
}

// recordingCache remembers invalidated dates and serves whatever was set.
// It has no versioning.
type recordingCache struct {
	mu          sync.Mutex
	entries     map[string][]models.Appointment
	invalidated []string
}

func (c *recordingCache) Get(_ context.Context, date string) ([]models.Appointment, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rows, ok := c.entries[date]
	return rows, ok
}

func (c *recordingCache) Version(context.Context, string) string { return "" }

func (c *recordingCache) Set(_ context.Context, date, _ string, rows []models.Appointment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = map[string][]models.Appointment{}
	}
	c.entries[date] = rows
}

func (c *recordingCache) Invalidate(_ context.Context, dates ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, dates...)
	for _, d := range dates {
		delete(c.entries, d)
	}
}

// fakeRepo fails loudly on any call a test did not configure.
type fakeRepo struct {
	GetAppointmentsByDateFn  func(ctx context.Context, date string) ([]models.Appointment, error)
	GetAppointmentsBetweenFn func(ctx context.Context, from, to string) ([]models.Appointment, error)
}

func (f *fakeRepo) WithDayLock(context.Context, string, func(tx domain.Repository) error) error {
	panic("WithDayLock not expected")
}

func (f *fakeRepo) ClientExists(context.Context, uint) (bool, error) {
	panic("ClientExists not expected")
}

func (f *fakeRepo) GetAppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	if f.GetAppointmentsByDateFn == nil {
		panic("GetAppointmentsByDateFn not set")
	}
	return f.GetAppointmentsByDateFn(ctx, date)
}

func (f *fakeRepo) GetAppointmentsBetween(ctx context.Context, from, to string) ([]models.Appointment, error) {
	if f.GetAppointmentsBetweenFn == nil {
		panic("GetAppointmentsBetweenFn not set")
	}
	return f.GetAppointmentsBetweenFn(ctx, from, to)
}

func (f *fakeRepo) GetAppointment(context.Context, uint) (*models.Appointment, error) {
	panic("GetAppointment not expected")
}

func (f *fakeRepo) InsertAppointment(context.Context, *models.Appointment) error {
	panic("InsertAppointment not expected")
}

func (f *fakeRepo) UpdateAppointment(context.Context, *models.Appointment) error {
	panic("UpdateAppointment not expected")
}

func (f *fakeRepo) InsertBooking(context.Context, *models.Booking) error {
	panic("InsertBooking not expected")
}

func (f *fakeRepo) GetBooking(context.Context, uuid.UUID) (*models.Booking, error) {
	panic("GetBooking not expected")
}

type fixedHours struct{ h domain.WorkHours }

func (f fixedHours) GetWorkHours(context.Context) (domain.WorkHours, error) { return f.h, nil }

func (f fixedHours) UpdateWorkHours(context.Context, domain.WorkHours) error {
	panic("UpdateWorkHours not expected")
}
