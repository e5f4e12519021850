package client

import (
	"context"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/client"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

type ListClients struct {
	repo domain.Repository
}

func NewListClients(repo domain.Repository) *ListClients {
	return &ListClients{repo: repo}
}

// Execute filters by name or phone when query is not blank.
func (uc *ListClients) Execute(ctx context.Context, query string) ([]models.Client, error) {
	return uc.repo.GetClients(ctx, query)
}

type GetClient struct {
	repo domain.Repository
}

func NewGetClient(repo domain.Repository) *GetClient {
	return &GetClient{repo: repo}
}

func (uc *GetClient) Execute(ctx context.Context, id uint) (*models.Client, error) {
	return uc.repo.GetClient(ctx, id)
}
