// Package notifications turns order events into notifications and delivers
// them in the background once the transition that raised them is committed.
package notifications

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"geoshop/internal/core/domain/model/identity"
	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/core/ports"
)

var ErrDispatcherIsStopped = errors.New("dispatcher is stopped")

// IdentityReader resolves the address of clients.
type IdentityReader interface {
	Get(ctx context.Context, id kernel.UUID) (*identity.Identity, error)
}

type Config struct {
	// OperatorsEmail receives operator events and validation requests of
	// products with no reachable validator.
	OperatorsEmail string
	Workers        int
	QueueSize      int
	// Timeout bounds a single resolution and send.
	Timeout time.Duration
}

// Dispatcher is a bounded fire-and-forget queue in front of a sink. A full
// queue drops the event with a warning; delivery failures are logged.
type Dispatcher struct {
	sink       ports.NotificationSink
	identities IdentityReader
	cfg        Config
	logger     *slog.Logger

	mu      sync.RWMutex
	queue   chan order.Event
	stopped bool
	wg      sync.WaitGroup
}

func NewDispatcher(sink ports.NotificationSink, identities IdentityReader, cfg Config, logger *slog.Logger) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 100
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Dispatcher{
		sink:       sink,
		identities: identities,
		cfg:        cfg,
		logger:     logger.With("component", "NotificationDispatcher"),
		queue:      make(chan order.Event, cfg.QueueSize),
	}
}

// Start launches the workers. They exit when Stop is called and the queue
// is drained.
func (d *Dispatcher) Start(ctx context.Context) {
	for range d.cfg.Workers {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			for e := range d.queue {
				d.deliver(ctx, e)
			}
		}()
	}
}

// Dispatch enqueues events without blocking.
func (d *Dispatcher) Dispatch(events ...order.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, e := range events {
		if d.stopped {
			d.logger.Warn("event dropped", "kind", e.Kind.String(), "order_id", e.OrderID.String(),
				"error", ErrDispatcherIsStopped)
			continue
		}
		select {
		case d.queue <- e:
		default:
			d.logger.Warn("notification queue is full, event dropped",
				"kind", e.Kind.String(), "order_id", e.OrderID.String())
		}
	}
}

// Stop closes the queue and waits for the workers to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.queue)
	}
	d.mu.Unlock()
	d.wg.Wait()
}

func (d *Dispatcher) deliver(ctx context.Context, e order.Event) {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	log := d.logger.With("kind", e.Kind.String(), "order_id", e.OrderID.String())

	n, err := d.Resolve(ctx, e)
	if err != nil {
		log.Error("cannot resolve recipient", "error", err)
		return
	}
	if err = d.sink.Notify(ctx, n); err != nil {
		log.Error("notification failed", "to", n.To, "error", err)
		return
	}
	log.Debug("notification sent", "to", n.To)
}

// Resolve fills in the recipient address of an event.
func (d *Dispatcher) Resolve(ctx context.Context, e order.Event) (ports.Notification, error) {
	n := ports.Notification{
		Kind:    e.Kind,
		Role:    e.Recipient.Role,
		OrderID: e.OrderID,
		ItemID:  e.ItemID,
		Token:   e.Token,
		Detail:  e.Detail,
	}

	switch e.Recipient.Role {
	case order.Client:
		if e.Recipient.IdentityID == nil {
			return ports.Notification{}, errors.New("client recipient has no identity")
		}
		client, err := d.identities.Get(ctx, *e.Recipient.IdentityID)
		if err != nil {
			return ports.Notification{}, err
		}
		n.To = client.Email()
	case order.Validator:
		n.To = e.Recipient.Email
		if n.To == "" {
			n.To = d.cfg.OperatorsEmail
		}
	default:
		n.To = d.cfg.OperatorsEmail
	}

	if n.To == "" {
		return ports.Notification{}, errors.New("no address for " + e.Recipient.Role.String())
	}
	return n, nil
}
