package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/zaban-academy/internal/metrics"
)

// Dispatcher sends notifications from a background worker so delivery
// never delays or fails the request that triggered it.
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	queue    chan Message

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(notifier Notifier, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 100
	}
	d := &Dispatcher{
		notifier: notifier,
		timeout:  15 * time.Second,
		queue:    make(chan Message, buffer),
		done:     make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for msg := range d.queue {
		d.send(msg)
	}
}

func (d *Dispatcher) send(msg Message) {
	defer func() {
		if r := recover(); r != nil {
			metrics.Notifications.WithLabelValues("failed").Inc()
			zap.L().Error("notification panicked", zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.notifier.Notify(ctx, msg); err != nil {
		metrics.Notifications.WithLabelValues("failed").Inc()
		zap.L().Warn("notification failed", zap.String("to", msg.To), zap.Error(err))
		return
	}
	metrics.Notifications.WithLabelValues("sent").Inc()
}

// Dispatch enqueues msg; a full queue drops it.
func (d *Dispatcher) Dispatch(msg Message) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- msg:
	default:
		metrics.Notifications.WithLabelValues("dropped").Inc()
		zap.L().Warn("notification queue full, dropping message", zap.String("to", msg.To))
	}
}

// Close stops accepting messages and waits for queued ones to be sent.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}
