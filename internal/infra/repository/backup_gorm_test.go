package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

func TestBackup_DumpThenReplaceRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewBackupGormRepository(db)
	ctx := context.Background()

	ana := seedClient(t, db, "Ana")
	bookingID := uuid.New()
	if err := db.Omit("Client", "Appointments").Create(&models.Booking{
		ID: bookingID, ClientID: ana.ID, Date: "2025-03-01", StartTime: "09:00", Blocks: 2,
	}).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	seedAppointment(t, db, models.Appointment{ClientID: ana.ID, BookingID: &bookingID, Date: "2025-03-01", Time: "09:00", Status: "confirmed"})
	seedAppointment(t, db, models.Appointment{ClientID: ana.ID, BookingID: &bookingID, Date: "2025-03-01", Time: "09:15", Status: "confirmed"})

	snap, err := repo.Dump(ctx)
	if err != nil {
		t.Fatalf("Dump error: %v", err)
	}
	if len(snap.Clients) != 1 || len(snap.Bookings) != 1 || len(snap.Appointments) != 2 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.Settings.WorkStart != "09:00" {
		t.Fatalf("settings = %+v", snap.Settings)
	}

	// changes after the dump are discarded by the restore
	seedClient(t, db, "Bruno")
	snap.Settings.WorkEnd = "20:00"

	if err := repo.Replace(ctx, snap); err != nil {
		t.Fatalf("Replace error: %v", err)
	}

	var clients []models.Client
	db.Order("id").Find(&clients)
	if len(clients) != 1 || clients[0].ID != ana.ID || clients[0].Name != "Ana" {
		t.Fatalf("clients = %+v", clients)
	}

	var rows []models.Appointment
	db.Order("time").Find(&rows)
	if len(rows) != 2 || rows[0].BookingID == nil || *rows[0].BookingID != bookingID {
		t.Fatalf("appointments = %+v", rows)
	}

	var s models.Settings
	db.First(&s, models.SettingsID)
	if s.WorkEnd != "20:00" {
		t.Fatalf("work_end = %s, want 20:00", s.WorkEnd)
	}
}

func TestBackup_ReplaceWithEmptySnapshotClears(t *testing.T) {
	db := newTestDB(t)
	repo := NewBackupGormRepository(db)
	seedClient(t, db, "Ana")

	snap, _ := repo.Dump(context.Background())
	snap.Clients = nil

	if err := repo.Replace(context.Background(), snap); err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	var count int64
	db.Model(&models.Client{}).Count(&count)
	if count != 0 {
		t.Fatalf("clients = %d, want 0", count)
	}
}
