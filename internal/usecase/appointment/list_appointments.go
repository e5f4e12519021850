package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-agenda/internal/dto"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) ([]dto.AppointmentListDTO, error) {

	date, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.GetAppointmentsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return dto.AppointmentList(rows), nil
}

// maxRangeDays bounds a between query to about a year.
const maxRangeDays = 370

type ListAppointmentsBetween struct {
	repo domain.Repository
}

func NewListAppointmentsBetween(
	repo domain.Repository,
) *ListAppointmentsBetween {
	return &ListAppointmentsBetween{
		repo: repo,
	}
}

func (uc *ListAppointmentsBetween) Execute(
	ctx context.Context,
	from string,
	to string,
) ([]dto.AppointmentListDTO, error) {

	from, err := domain.ParseDate(from)
	if err != nil {
		return nil, err
	}
	to, err = domain.ParseDate(to)
	if err != nil {
		return nil, err
	}
	if to < from {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}
	if days, _ := domain.DaysBetween(from, to); days > maxRangeDays {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}

	rows, err := uc.repo.GetAppointmentsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return dto.AppointmentList(rows), nil
}
