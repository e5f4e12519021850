package client

import (
	"context"

	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type Repository interface {
	// -------- Client --------
	GetClients(
		ctx context.Context,
		query string,
	) ([]models.Client, error)

	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	// NameTaken reports whether another client (not exceptID) already uses
	// name, compared with NameKey.
	NameTaken(
		ctx context.Context,
		name string,
		exceptID uint,
	) (bool, error)

	InsertClient(
		ctx context.Context,
		c *models.Client,
	) error

	UpdateClient(
		ctx context.Context,
		c *models.Client,
	) error

	SetPhotoURL(
		ctx context.Context,
		id uint,
		url string,
	) error

	// -------- Aggregates --------
	CountAppointmentsByStatus(
		ctx context.Context,
		clientID uint,
	) (map[string]int64, error)

	// NextAppointment returns the earliest row at or after date+clock in
	// any status, or nil.
	NextAppointment(
		ctx context.Context,
		clientID uint,
		date string,
		clock string,
	) (*models.Appointment, error)

	// AppointmentNotes returns non-blank notes, newest appointment first.
	AppointmentNotes(
		ctx context.Context,
		clientID uint,
	) ([]string, error)
}

// PhotoStore uploads an encoded photo and returns its public URL.
type PhotoStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
