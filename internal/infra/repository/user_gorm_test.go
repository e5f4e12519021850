package repository

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

func TestUserRepository_InsertAndLookup(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserGormRepository(db)
	ctx := context.Background()

	if n, err := repo.CountUsers(ctx); err != nil || n != 0 {
		t.Fatalf("CountUsers = %d, %v; want 0", n, err)
	}

	u := &models.User{Name: "Ana", Email: "ana@salon.cr", PasswordHash: "x", Role: models.RoleOwner}
	if err := repo.InsertUser(ctx, u); err != nil {
		t.Fatalf("InsertUser: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("expected id to be set")
	}

	dup := &models.User{Name: "Other", Email: "ana@salon.cr", PasswordHash: "y"}
	if err := repo.InsertUser(ctx, dup); !httperr.IsBusiness(err, "email_taken") {
		t.Fatalf("duplicate err = %v, want email_taken", err)
	}

	got, err := repo.GetUserByEmail(ctx, "ana@salon.cr")
	if err != nil || got.ID != u.ID {
		t.Fatalf("GetUserByEmail = %+v, %v", got, err)
	}
	if _, err := repo.GetUserByEmail(ctx, "nobody@salon.cr"); !httperr.IsBusiness(err, "user_not_found") {
		t.Fatalf("err = %v, want user_not_found", err)
	}
	if _, err := repo.GetUser(ctx, 999); !httperr.IsBusiness(err, "user_not_found") {
		t.Fatalf("err = %v, want user_not_found", err)
	}
	if n, _ := repo.CountUsers(ctx); n != 1 {
		t.Fatalf("CountUsers = %d, want 1", n)
	}
}
