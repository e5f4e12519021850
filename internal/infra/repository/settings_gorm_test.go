package repository

import (
	"context"
	"testing"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

func TestWorkHours_SeededDefaultsAndUpsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsGormRepository(db)
	ctx := context.Background()

	hours, err := repo.GetWorkHours(ctx)
	if err != nil {
		t.Fatalf("GetWorkHours error: %v", err)
	}
	if hours != domain.DefaultWorkHours() {
		t.Fatalf("hours = %+v, want defaults", hours)
	}

	if err := repo.UpdateWorkHours(ctx, domain.WorkHours{Start: "08:30", End: "18:00"}); err != nil {
		t.Fatalf("UpdateWorkHours error: %v", err)
	}
	hours, _ = repo.GetWorkHours(ctx)
	if hours.Start != "08:30" || hours.End != "18:00" {
		t.Fatalf("hours = %+v", hours)
	}

	var count int64
	db.Model(&models.Settings{}).Count(&count)
	if count != 1 {
		t.Fatalf("settings rows = %d, want 1", count)
	}
}

func TestGetWorkHours_MissingRowFallsBack(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsGormRepository(db)

	db.Where("1 = 1").Delete(&models.Settings{})

	hours, err := repo.GetWorkHours(context.Background())
	if err != nil {
		t.Fatalf("GetWorkHours error: %v", err)
	}
	if hours != domain.DefaultWorkHours() {
		t.Fatalf("hours = %+v, want defaults", hours)
	}
}
