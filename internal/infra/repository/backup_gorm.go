package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/backup"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

const restoreBatchSize = 200

type BackupGormRepository struct {
	db *gorm.DB
}

func NewBackupGormRepository(db *gorm.DB) *BackupGormRepository {
	return &BackupGormRepository{db: db}
}

func (r *BackupGormRepository) Dump(ctx context.Context) (*domain.Snapshot, error) {
	s := &domain.Snapshot{
		Version:   domain.SnapshotVersion,
		CreatedAt: time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", models.SettingsID).
			Limit(1).
			Find(&s.Settings).Error; err != nil {
			return fmt.Errorf("dump settings: %w", err)
		}
		if err := tx.Order("id ASC").Find(&s.Clients).Error; err != nil {
			return fmt.Errorf("dump clients: %w", err)
		}
		if err := tx.Order("created_at ASC").Find(&s.Bookings).Error; err != nil {
			return fmt.Errorf("dump bookings: %w", err)
		}
		if err := tx.Order("id ASC").Find(&s.Appointments).Error; err != nil {
			return fmt.Errorf("dump appointments: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Replace wipes clients, bookings and appointments and loads the
// snapshot with its original ids. Audit logs and users are kept.
func (r *BackupGormRepository) Replace(ctx context.Context, s *domain.Snapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// children first for the foreign keys
		for _, model := range []any{&models.Appointment{}, &models.Booking{}, &models.Client{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("clear %T: %w", model, err)
			}
		}

		if len(s.Clients) > 0 {
			if err := tx.CreateInBatches(&s.Clients, restoreBatchSize).Error; err != nil {
				return fmt.Errorf("restore clients: %w", err)
			}
		}
		if len(s.Bookings) > 0 {
			if err := tx.Omit(clause.Associations).
				CreateInBatches(&s.Bookings, restoreBatchSize).Error; err != nil {
				return fmt.Errorf("restore bookings: %w", err)
			}
		}
		if len(s.Appointments) > 0 {
			if err := tx.Omit(clause.Associations).
				CreateInBatches(&s.Appointments, restoreBatchSize).Error; err != nil {
				return fmt.Errorf("restore appointments: %w", err)
			}
		}

		if s.Settings.WorkStart != "" && s.Settings.WorkEnd != "" {
			settings := s.Settings
			settings.ID = models.SettingsID
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"work_start", "work_end", "updated_at"}),
			}).Create(&settings).Error; err != nil {
				return fmt.Errorf("restore settings: %w", err)
			}
		}

		return resetSequences(tx, "clients", "appointments")
	})
}

// resetSequences moves postgres serial sequences past the restored ids.
func resetSequences(tx *gorm.DB, tables ...string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	for _, t := range tables {
		sql := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 0) + 1, false)",
			t, t,
		)
		if err := tx.Exec(sql).Error; err != nil {
			return fmt.Errorf("reset %s sequence: %w", t, err)
		}
	}
	return nil
}

var _ domain.Repository = (*BackupGormRepository)(nil)
