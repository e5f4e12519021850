package client

import (
	"context"
	"strconv"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/client"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type CreateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateClient {
	return &CreateClient{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	userID *uint,
	in domain.Input,
) (*models.Client, error) {

	c, err := uc.create(ctx, in)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   audit.ActionClientCreated,
		Entity:   "client",
		EntityID: strconv.FormatUint(uint64(c.ID), 10),
	})
	return c, nil
}

func (uc *CreateClient) create(ctx context.Context, in domain.Input) (*models.Client, error) {
	in, err := domain.Normalize(in)
	if err != nil {
		return nil, err
	}

	taken, err := uc.repo.NameTaken(ctx, in.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("duplicate_client_name")
	}

	c := &models.Client{
		Name:  in.Name,
		Phone: in.Phone,
		Email: in.Email,
		Notes: in.Notes,
	}
	if err := uc.repo.InsertClient(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
