package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	ActionBookingCreated     = "booking_created"
	ActionStatusChanged      = "status_changed"
	ActionBookingCanceled    = "booking_canceled"
	ActionClientCreated      = "client_created"
	ActionClientUpdated      = "client_updated"
	ActionClientsImported    = "clients_imported"
	ActionClientPhotoUpdated = "client_photo_updated"
	ActionWorkHoursUpdated   = "work_hours_updated"
	ActionBackupCreated      = "backup_created"
	ActionBackupRestored     = "backup_restored"
	ActionUserRegistered     = "user_registered"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID string
	Metadata any
	At       time.Time
}

// Sink persists or forwards one event.
type Sink interface {
	Write(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sinks []Sink
	log   *slog.Logger
	queue chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(log *slog.Logger, sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		sinks: sinks,
		log:   log,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, s := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := s.Write(ctx, ev); err != nil {
				d.log.Error("audit sink failed", "action", ev.Action, "err", err)
			}
			cancel()
		}
	}
}

// Dispatch never blocks the request path; a full queue drops the event.
// A nil or closed dispatcher is a no-op.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close stops accepting events and waits for queued ones to be written.
func (d *Dispatcher) Close(ctx context.Context) error {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
