package settings

import (
	"context"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
)

type GetWorkHours struct {
	repo domain.WorkHoursRepository
}

func NewGetWorkHours(repo domain.WorkHoursRepository) *GetWorkHours {
	return &GetWorkHours{repo: repo}
}

func (uc *GetWorkHours) Execute(ctx context.Context) (domain.WorkHours, error) {
	return uc.repo.GetWorkHours(ctx)
}

// UpdateWorkHours stores new advisory hours. Existing appointments are
// not re-checked.
type UpdateWorkHours struct {
	repo  domain.WorkHoursRepository
	audit *audit.Dispatcher
}

func NewUpdateWorkHours(
	repo domain.WorkHoursRepository,
	audit *audit.Dispatcher,
) *UpdateWorkHours {
	return &UpdateWorkHours{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateWorkHours) Execute(
	ctx context.Context,
	userID *uint,
	start string,
	end string,
) (domain.WorkHours, error) {

	hours, err := domain.NewWorkHours(start, end)
	if err != nil {
		return domain.WorkHours{}, err
	}

	before, err := uc.repo.GetWorkHours(ctx)
	if err != nil {
		return domain.WorkHours{}, err
	}

	if err := uc.repo.UpdateWorkHours(ctx, hours); err != nil {
		return domain.WorkHours{}, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   audit.ActionWorkHoursUpdated,
		Entity:   "settings",
		EntityID: "1",
		Metadata: map[string]domain.WorkHours{"before": before, "after": hours},
	})
	return hours, nil
}
