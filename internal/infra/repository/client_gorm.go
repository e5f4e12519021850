package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/client"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *ClientGormRepository) GetClients(
	ctx context.Context,
	query string,
) ([]models.Client, error) {

	q := r.db.WithContext(ctx).Model(&models.Client{})

	query = strings.ToLower(strings.TrimSpace(query))
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, like)
	}

	var clients []models.Client
	if err := q.
		Order("name ASC").
		Order("id ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		return nil, err
	}
	return &c, nil
}

// NameTaken compares in Go so the check behaves the same on every
// dialect; SQLite's LOWER only folds ASCII.
func (r *ClientGormRepository) NameTaken(
	ctx context.Context,
	name string,
	exceptID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).Model(&models.Client{})
	if exceptID > 0 {
		q = q.Where("id <> ?", exceptID)
	}

	var names []string
	if err := q.Pluck("name", &names).Error; err != nil {
		return false, err
	}

	key := domain.NameKey(name)
	for _, n := range names {
		if domain.NameKey(n) == key {
			return true, nil
		}
	}
	return false, nil
}

func (r *ClientGormRepository) InsertClient(
	ctx context.Context,
	c *models.Client,
) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// UpdateClient changes contact fields only; notes and photo have their
// own paths.
func (r *ClientGormRepository) UpdateClient(
	ctx context.Context,
	c *models.Client,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"name":  c.Name,
			"phone": c.Phone,
			"email": c.Email,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("client_not_found")
	}
	return nil
}

func (r *ClientGormRepository) SetPhotoURL(
	ctx context.Context,
	id uint,
	url string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		Update("photo_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("client_not_found")
	}
	return nil
}

// --------------------------------------------------
// Aggregates
// --------------------------------------------------

func (r *ClientGormRepository) CountAppointmentsByStatus(
	ctx context.Context,
	clientID uint,
) (map[string]int64, error) {

	var rows []struct {
		Status string
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("status, COUNT(*) AS count").
		Where("client_id = ?", clientID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *ClientGormRepository) NextAppointment(
	ctx context.Context,
	clientID uint,
	date string,
	clock string,
) (*models.Appointment, error) {

	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Where("date > ? OR (date = ? AND time >= ?)", date, date, clock).
		Order("date ASC").
		Order("time ASC").
		Order("id ASC").
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *ClientGormRepository) AppointmentNotes(
	ctx context.Context,
	clientID uint,
) ([]string, error) {

	var notes []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("client_id = ?", clientID).
		Where("notes IS NOT NULL AND TRIM(notes) <> ''").
		Order("date DESC").
		Order("time DESC").
		Order("id DESC").
		Pluck("notes", &notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

var _ domain.Repository = (*ClientGormRepository)(nil)
