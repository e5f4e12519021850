package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/client"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/infra/imaging"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

// UploadPhoto converts an image to a bounded WebP and stores it under
// clients/<id>.webp.
type UploadPhoto struct {
	repo  domain.Repository
	store domain.PhotoStore
	audit *audit.Dispatcher
}

func NewUploadPhoto(
	repo domain.Repository,
	store domain.PhotoStore,
	audit *audit.Dispatcher,
) *UploadPhoto {
	return &UploadPhoto{
		repo:  repo,
		store: store,
		audit: audit,
	}
}

func (uc *UploadPhoto) Execute(
	ctx context.Context,
	userID *uint,
	clientID uint,
	data []byte,
) (*models.Client, error) {

	if uc.store == nil {
		return nil, httperr.ErrBusiness("storage_not_configured")
	}

	c, err := uc.repo.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	img, err := imaging.ToWebP(data, imaging.MaxPhotoSide)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("clients/%d.webp", c.ID)
	url, err := uc.store.Put(ctx, key, img, "image/webp")
	if err != nil {
		return nil, err
	}

	if err := uc.repo.SetPhotoURL(ctx, c.ID, url); err != nil {
		return nil, err
	}
	c.PhotoURL = url

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   audit.ActionClientPhotoUpdated,
		Entity:   "client",
		EntityID: strconv.FormatUint(uint64(c.ID), 10),
		Metadata: map[string]any{"key": key, "bytes": len(img)},
	})
	return c, nil
}
