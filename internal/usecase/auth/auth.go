package auth

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/user"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
	"github.com/BruksfildServices01/salon-agenda/internal/validators"
)

const minPasswordLen = 8

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type Session struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// ======================================================
// REGISTER
// ======================================================

// Register creates accounts. The first account is the salon owner and
// self-service registration closes once it exists; later accounts are
// staff created by an owner.
type Register struct {
	repo        domain.Repository
	tokens      *Tokens
	checkDomain validators.DomainChecker
	audit       *audit.Dispatcher
}

func NewRegister(
	repo domain.Repository,
	tokens *Tokens,
	checkDomain validators.DomainChecker,
	audit *audit.Dispatcher,
) *Register {
	return &Register{
		repo:        repo,
		tokens:      tokens,
		checkDomain: checkDomain,
		audit:       audit,
	}
}

// Bootstrap registers the owner account and signs it in.
func (uc *Register) Bootstrap(ctx context.Context, in RegisterInput) (*Session, error) {
	n, err := uc.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, httperr.ErrBusiness("registration_closed")
	}

	u, err := uc.create(ctx, nil, in, models.RoleOwner)
	if err != nil {
		return nil, err
	}

	token, exp, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	return &Session{User: u, Token: token, ExpiresAt: exp}, nil
}

// CreateStaff adds a staff account on behalf of an owner.
func (uc *Register) CreateStaff(
	ctx context.Context,
	actorID *uint,
	in RegisterInput,
) (*models.User, error) {
	return uc.create(ctx, actorID, in, models.RoleStaff)
}

func (uc *Register) create(
	ctx context.Context,
	actorID *uint,
	in RegisterInput,
	role string,
) (*models.User, error) {

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness("required_field_missing")
	}

	email, ok := validators.NormalizeEmail(in.Email)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_email")
	}
	if uc.checkDomain != nil && !uc.checkDomain(ctx, email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	if len(in.Password) < minPasswordLen {
		return nil, httperr.ErrBusiness("weak_password")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := uc.repo.InsertUser(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   audit.ActionUserRegistered,
		Entity:   "user",
		EntityID: strconv.FormatUint(uint64(u.ID), 10),
		Metadata: map[string]any{
			"email": u.Email,
			"role":  u.Role,
		},
	})

	return u, nil
}

// ======================================================
// LOGIN
// ======================================================

type Login struct {
	repo   domain.Repository
	tokens *Tokens
}

func NewLogin(repo domain.Repository, tokens *Tokens) *Login {
	return &Login{repo: repo, tokens: tokens}
}

// Execute answers invalid_credentials for both an unknown email and a
// wrong password.
func (uc *Login) Execute(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	token, exp, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	return &Session{User: u, Token: token, ExpiresAt: exp}, nil
}

// ======================================================
// ME
// ======================================================

type GetUser struct {
	repo domain.Repository
}

func NewGetUser(repo domain.Repository) *GetUser {
	return &GetUser{repo: repo}
}

func (uc *GetUser) Execute(ctx context.Context, id uint) (*models.User, error) {
	return uc.repo.GetUser(ctx, id)
}
