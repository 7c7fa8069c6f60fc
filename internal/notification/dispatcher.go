// Package notification decouples mail sending from the request path. A
// mutation enqueues mail events and returns; a background worker publishes
// them to Kafka, where the external mailer picks them up.
package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Mailer is what the service layer sees: fire-and-forget, no error return.
type Mailer interface {
	Send(subject, body, fromLabel string, recipients []string)
	NotifyAdmins(subject, body string)
}

// Publisher hands an event to the outbound channel.
type Publisher interface {
	Publish(ctx context.Context, event MailRequestedEvent) error
}

type Dispatcher struct {
	publisher   Publisher
	adminEmails []string
	queue       chan MailRequestedEvent
	logger      *zap.Logger

	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewDispatcher(publisher Publisher, adminEmails []string, queueSize int, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		publisher:   publisher,
		adminEmails: adminEmails,
		queue:       make(chan MailRequestedEvent, queueSize),
		logger:      logger,
	}

	d.wg.Add(1)
	go d.run()

	return d
}

func (d *Dispatcher) Send(subject, body, fromLabel string, recipients []string) {
	d.enqueue(MailRequestedEvent{
		EventID:    uuid.NewString(),
		Subject:    subject,
		Body:       body,
		FromLabel:  fromLabel,
		Recipients: recipients,
		Timestamp:  time.Now().UTC(),
	})
}

func (d *Dispatcher) NotifyAdmins(subject, body string) {
	d.enqueue(MailRequestedEvent{
		EventID:    uuid.NewString(),
		Subject:    subject,
		Body:       body,
		Recipients: d.adminEmails,
		Admin:      true,
		Timestamp:  time.Now().UTC(),
	})
}

// enqueue never blocks; a full queue drops the mail with a log line rather
// than stalling the mutation that triggered it.
func (d *Dispatcher) enqueue(event MailRequestedEvent) {
	select {
	case d.queue <- event:
	default:
		d.logger.Warn("Notification queue full, dropping mail",
			zap.String("event_id", event.EventID),
			zap.String("subject", event.Subject))
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for event := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := d.publisher.Publish(ctx, event); err != nil {
			// Best effort. The triggering mutation has already returned.
			d.logger.Error("Failed to dispatch mail event",
				zap.String("event_id", event.EventID),
				zap.Error(err))
		}
		cancel()
	}
}

// Close drains the queue and stops the worker.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}
