package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *AppointmentGormRepository) WithDayLock(
	ctx context.Context,
	date string,
	fn func(tx domain.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockDay(tx, date); err != nil {
			return err
		}
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// lockDay serializes writers of one date. SQLite already allows a single
// writer, so only postgres needs the advisory lock.
func lockDay(tx *gorm.DB, date string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "agenda:"+date).Error
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) ClientExists(
	ctx context.Context,
	clientID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Appointment (reads)
// --------------------------------------------------

func (r *AppointmentGormRepository) withClientName(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("appointments.*, clients.name AS client_name").
		Joins("LEFT JOIN clients ON clients.id = appointments.client_id")
}

func (r *AppointmentGormRepository) GetAppointmentsByDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var rows []models.Appointment
	if err := r.withClientName(ctx).
		Where("appointments.date = ?", date).
		Order("appointments.time ASC").
		Order("appointments.created_at DESC").
		Order("appointments.id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AppointmentGormRepository) GetAppointmentsBetween(
	ctx context.Context,
	startDate string,
	endDate string,
) ([]models.Appointment, error) {

	var rows []models.Appointment
	if err := r.withClientName(ctx).
		Where("appointments.date >= ? AND appointments.date <= ?", startDate, endDate).
		Order("appointments.date ASC").
		Order("appointments.time ASC").
		Order("appointments.id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.withClientName(ctx).
		Where("appointments.id = ?", id).
		First(&ap).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Appointment (writes)
// --------------------------------------------------

func (r *AppointmentGormRepository) InsertAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if ap.Status == "" {
		ap.Status = string(domain.InitialStatus())
	}
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(ap).Error
}

// UpdateAppointment writes status, notes and the modification time.
func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Updates(map[string]any{
			"status":     ap.Status,
			"notes":      ap.Notes,
			"created_at": ap.CreatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("appointment_not_found")
	}
	return nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

// InsertBooking stores the booking header only; blocks go through
// InsertAppointment.
func (r *AppointmentGormRepository) InsertBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(b).Error
}

func (r *AppointmentGormRepository) GetBooking(
	ctx context.Context,
	id uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Appointments", func(db *gorm.DB) *gorm.DB {
			return db.Order("time ASC").Order("id ASC")
		}).
		Where("id = ?", id).
		First(&b).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}
	return &b, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
