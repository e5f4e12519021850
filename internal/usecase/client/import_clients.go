package client

import (
	"context"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/client"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

const maxImport = 1000

type SkippedContact struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Imported []models.Client  `json:"imported"`
	Skipped  []SkippedContact `json:"skipped"`
}

// ImportClients registers a batch of phone contacts. A bad contact is
// skipped and reported; it never fails the batch.
type ImportClients struct {
	create *CreateClient
	audit  *audit.Dispatcher
}

func NewImportClients(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ImportClients {
	return &ImportClients{
		create: NewCreateClient(repo, nil),
		audit:  audit,
	}
}

func (uc *ImportClients) Execute(
	ctx context.Context,
	userID *uint,
	contacts []domain.Input,
) (*ImportResult, error) {

	if len(contacts) > maxImport {
		return nil, httperr.ErrBusiness("too_many_contacts")
	}

	res := &ImportResult{
		Imported: []models.Client{},
		Skipped:  []SkippedContact{},
	}
	for i, in := range contacts {
		c, err := uc.create.create(ctx, in)
		if err != nil {
			code, ok := httperr.BusinessCode(err)
			if !ok {
				return nil, err
			}
			res.Skipped = append(res.Skipped, SkippedContact{Index: i, Name: in.Name, Reason: code})
			continue
		}
		res.Imported = append(res.Imported, *c)
	}

	if len(res.Imported) > 0 {
		uc.audit.Dispatch(audit.Event{
			UserID:   userID,
			Action:   audit.ActionClientsImported,
			Entity:   "client",
			Metadata: map[string]int{"imported": len(res.Imported), "skipped": len(res.Skipped)},
		})
	}
	return res, nil
}
