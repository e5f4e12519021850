package user

import (
	"context"

	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type Repository interface {
	CountUsers(ctx context.Context) (int64, error)

	// InsertUser fails with email_taken when the email is in use.
	InsertUser(ctx context.Context, u *models.User) error

	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	GetUser(ctx context.Context, id uint) (*models.User, error)
}
