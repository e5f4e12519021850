package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type SettingsGormRepository struct {
	db *gorm.DB
}

func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

// GetWorkHours falls back to the defaults when the settings row is
// missing.
func (r *SettingsGormRepository) GetWorkHours(ctx context.Context) (domain.WorkHours, error) {
	var s models.Settings
	if err := r.db.WithContext(ctx).First(&s, models.SettingsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DefaultWorkHours(), nil
		}
		return domain.WorkHours{}, err
	}
	return domain.WorkHours{Start: s.WorkStart, End: s.WorkEnd}, nil
}

func (r *SettingsGormRepository) UpdateWorkHours(ctx context.Context, hours domain.WorkHours) error {
	s := models.Settings{
		ID:        models.SettingsID,
		WorkStart: hours.Start,
		WorkEnd:   hours.End,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"work_start", "work_end", "updated_at"}),
		}).
		Create(&s).Error
}

var _ domain.WorkHoursRepository = (*SettingsGormRepository)(nil)
