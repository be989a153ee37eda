package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Memex-200/Abutig-sub000/internal/config"
	"github.com/Memex-200/Abutig-sub000/internal/domain"
)

// Delivery outcomes reported to the recorder.
const (
	OutcomeSent    = "sent"
	OutcomeFailed  = "failed"
	OutcomeDropped = "dropped"
)

type recorder interface {
	ObserveNotification(outcome string)
}

// complainantLookup resolves the recipient of an event.
type complainantLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Complainant, error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveNotification(string) {}

// Dispatcher queues events and delivers them on a fixed pool of workers.
// Dispatch never blocks: when the queue is full the event is dropped.
// Every dispatched event ends up either sent, failed or dropped.
type Dispatcher struct {
	notifier     Notifier
	complainants complainantLookup
	log          *slog.Logger
	rec          recorder
	queue        chan domain.StatusChangeEvent
	quit         chan struct{}
	workers      int
	timeout      time.Duration

	// mu orders enqueues against stopping: once stopped is set no event
	// can enter the queue, so the workers' final drain sees all of them.
	mu      sync.RWMutex
	stopped bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithRecorder reports delivery outcomes, typically to metrics.
func WithRecorder(r recorder) Option {
	return func(d *Dispatcher) { d.rec = r }
}

// WithComplainants makes workers load the recipient by
// StatusChangeEvent.ComplainantID before delivery. The lookup runs under
// the send timeout, off the caller's goroutine.
func WithComplainants(l complainantLookup) Option {
	return func(d *Dispatcher) { d.complainants = l }
}

// NewDispatcher creates a dispatcher. Workers start in Run.
func NewDispatcher(n Notifier, log *slog.Logger, cfg config.NotifyConfig, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		notifier: n,
		log:      log.With("component", "notify_dispatcher"),
		rec:      nopRecorder{},
		queue:    make(chan domain.StatusChangeEvent, cfg.QueueSize),
		quit:     make(chan struct{}),
		workers:  cfg.Workers,
		timeout:  cfg.SendTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch enqueues ev. It reports false when the event was dropped
// because the queue is full or the dispatcher has stopped.
func (d *Dispatcher) Dispatch(ev domain.StatusChangeEvent) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.drop(ev, "dispatcher stopped")
		return false
	}

	select {
	case d.queue <- ev:
		return true
	default:
		d.drop(ev, "queue full")
		return false
	}
}

func (d *Dispatcher) drop(ev domain.StatusChangeEvent, reason string) {
	d.rec.ObserveNotification(OutcomeDropped)
	d.log.Warn("notification dropped",
		slog.String("reason", reason),
		slog.String("complaint_id", ev.ComplaintID.String()),
	)
}

// Run starts the workers and blocks until ctx is cancelled. Queued events
// are drained before Run returns.
func (d *Dispatcher) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	for i := range d.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.work(i)
		}()
	}

	<-ctx.Done()

	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	close(d.quit)
	wg.Wait()

	d.log.Info("notification dispatcher stopped")
	return nil
}

func (d *Dispatcher) work(id int) {
	for {
		select {
		case ev := <-d.queue:
			d.deliver(ev)
		case <-d.quit:
			for {
				select {
				case ev := <-d.queue:
					d.deliver(ev)
				default:
					d.log.Debug("worker exiting", slog.Int("worker", id))
					return
				}
			}
		}
	}
}

// deliver runs one notification with its own timeout; the originating
// request has already returned.
func (d *Dispatcher) deliver(ev domain.StatusChangeEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if d.complainants != nil {
		c, err := d.complainants.GetByID(ctx, ev.ComplainantID)
		if err != nil {
			d.rec.ObserveNotification(OutcomeFailed)
			d.log.Warn("notification recipient lookup failed",
				slog.String("complaint_id", ev.ComplaintID.String()),
				slog.String("complainant_id", ev.ComplainantID.String()),
				slog.String("error", err.Error()),
			)
			return
		}
		ev.Complainant = *c
	}

	err := d.safeNotify(ctx, ev)
	if err != nil {
		d.rec.ObserveNotification(OutcomeFailed)
		d.log.Error("notification failed",
			slog.String("complaint_id", ev.ComplaintID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	d.rec.ObserveNotification(OutcomeSent)
}

func (d *Dispatcher) safeNotify(ctx context.Context, ev domain.StatusChangeEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notifier panic: %v", r)
		}
	}()
	return d.notifier.Notify(ctx, ev)
}
