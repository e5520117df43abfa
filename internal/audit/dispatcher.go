package audit

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

const queueSize = 100

const (
	EntityOrder  = "order"
	EntityClient = "client"
	EntityUser   = "user"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Recorder accepts audit events without blocking the caller.
type Recorder interface {
	Record(ev Event)
}

// Writer persists one event.
type Writer interface {
	Write(ctx context.Context, ev Event) error
}

// Dispatcher hands events to a single background worker. When the queue is
// full the event is dropped; auditing never fails a request.
type Dispatcher struct {
	writer Writer
	log    *zap.Logger
	queue  chan Event
	done   chan struct{}

	mu     sync.Mutex
	closed bool
}

func NewDispatcher(writer Writer, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		log:    log.Named("audit"),
		queue:  make(chan Event, queueSize),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.writer.Write(context.Background(), ev); err != nil {
			d.log.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

// Record queues ev. Events recorded after Close are dropped.
func (d *Dispatcher) Record(ev Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.log.Warn("audit dispatcher closed, dropping event", zap.String("action", ev.Action))
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close drains the queue and stops the worker. It is safe to call more than
// once and concurrently with Record.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.done
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}

// Nop discards events.
type Nop struct{}

func (Nop) Record(Event) {}

// Ptr is a small helper for optional ids in events.
func Ptr(id uint) *uint {
	return &id
}
