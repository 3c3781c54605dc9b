package notification

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"redcross/internal/metrics"
)

// Notifier queues notifications without waiting for delivery.
type Notifier interface {
	Enqueue(to string, tpl Template) bool
	NotifyAdmin(tpl Template) bool
}

type job struct {
	to  string
	tpl Template
}

// Dispatcher is a background task queue for outbound email. Delivery is
// best-effort: each job is attempted once, failures are logged, nothing is
// retried, and jobs submitted while the queue is full are dropped.
type Dispatcher struct {
	sender      Sender
	admin       string
	sendTimeout time.Duration
	logger      *zap.Logger

	jobs   chan job
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewDispatcher starts workers goroutines consuming a queue of queueSize jobs.
func NewDispatcher(sender Sender, adminAddress string, workers, queueSize int, logger *zap.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	d := &Dispatcher{
		sender:      sender,
		admin:       adminAddress,
		sendTimeout: 30 * time.Second,
		logger:      logger,
		jobs:        make(chan job, queueSize),
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for j := range d.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
		res := d.sender.Send(ctx, j.to, j.tpl)
		cancel()
		if !res.Success {
			d.logger.Warn("notification not delivered",
				zap.String("to", j.to),
				zap.String("subject", j.tpl.Subject),
				zap.String("transport", res.Transport),
				zap.String("error", res.Error),
			)
		}
	}
}

// Enqueue submits a notification and reports whether it was accepted.
func (d *Dispatcher) Enqueue(to string, tpl Template) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.logger.Warn("notification dropped, dispatcher closed", zap.String("to", to))
		return false
	}

	select {
	case d.jobs <- job{to: to, tpl: tpl}:
		return true
	default:
		metrics.NotificationsDropped.Inc()
		d.logger.Warn("notification dropped, queue full",
			zap.String("to", to),
			zap.String("subject", tpl.Subject),
		)
		return false
	}
}

// NotifyAdmin enqueues tpl for the configured administrative address.
func (d *Dispatcher) NotifyAdmin(tpl Template) bool {
	if d.admin == "" {
		d.logger.Warn("ADMIN_EMAIL not configured, skipping admin notification",
			zap.String("subject", tpl.Subject))
		return false
	}
	return d.Enqueue(d.admin, tpl)
}

// Close stops accepting jobs and waits for queued ones to finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.jobs)
	d.mu.Unlock()

	d.wg.Wait()
}
