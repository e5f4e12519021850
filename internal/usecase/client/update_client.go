package client

import (
	"context"
	"strconv"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/client"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

// AgendaFlusher drops every cached agenda day. Cached rows carry the
// client name, so a rename must not leave them behind.
type AgendaFlusher interface {
	Flush(ctx context.Context)
}

// UpdateClient edits name, phone and email. Notes are set at creation
// only.
type UpdateClient struct {
	repo   domain.Repository
	agenda AgendaFlusher
	audit  *audit.Dispatcher
}

func NewUpdateClient(
	repo domain.Repository,
	agenda AgendaFlusher,
	audit *audit.Dispatcher,
) *UpdateClient {
	return &UpdateClient{
		repo:   repo,
		agenda: agenda,
		audit:  audit,
	}
}

func (uc *UpdateClient) Execute(
	ctx context.Context,
	userID *uint,
	id uint,
	in domain.Input,
) (*models.Client, error) {

	in, err := domain.Normalize(in)
	if err != nil {
		return nil, err
	}

	c, err := uc.repo.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := uc.repo.NameTaken(ctx, in.Name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("duplicate_client_name")
	}

	before := c.Name
	c.Name = in.Name
	c.Phone = in.Phone
	c.Email = in.Email
	if err := uc.repo.UpdateClient(ctx, c); err != nil {
		return nil, err
	}
	if c.Name != before && uc.agenda != nil {
		uc.agenda.Flush(ctx)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   audit.ActionClientUpdated,
		Entity:   "client",
		EntityID: strconv.FormatUint(uint64(c.ID), 10),
		Metadata: map[string]string{"name_before": before, "name": c.Name},
	})
	return c, nil
}
