package client

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-agenda/internal/domain/appointment"
	domain "github.com/BruksfildServices01/salon-agenda/internal/domain/client"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

// ClientHistory answers the read-only aggregates of one client.
type ClientHistory struct {
	repo domain.Repository
	now  func() time.Time
}

func NewClientHistory(repo domain.Repository, now func() time.Time) *ClientHistory {
	return &ClientHistory{repo: repo, now: now}
}

func (uc *ClientHistory) Stats(ctx context.Context, clientID uint) (domain.Stats, error) {
	if _, err := uc.repo.GetClient(ctx, clientID); err != nil {
		return domain.Stats{}, err
	}

	counts, err := uc.repo.CountAppointmentsByStatus(ctx, clientID)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.StatsFromCounts(counts), nil
}

// NextAppointment returns the earliest row from now on in any status, or
// nil.
func (uc *ClientHistory) NextAppointment(ctx context.Context, clientID uint) (*models.Appointment, error) {
	if _, err := uc.repo.GetClient(ctx, clientID); err != nil {
		return nil, err
	}

	date, clock := appointment.NowClock(uc.now())
	return uc.repo.NextAppointment(ctx, clientID, date, clock)
}

// Notes returns the client's distinct service notes, newest first. The
// raw variant keeps duplicates and continuation markers.
func (uc *ClientHistory) Notes(ctx context.Context, clientID uint, raw bool) ([]string, error) {
	if _, err := uc.repo.GetClient(ctx, clientID); err != nil {
		return nil, err
	}

	notes, err := uc.repo.AppointmentNotes(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if raw {
		if notes == nil {
			notes = []string{}
		}
		return notes, nil
	}
	return domain.DedupNotes(notes), nil
}
