package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const deliveryTimeout = time.Second * 30

// PoolNotifier delivers on an in-process worker pool. Deliveries that still
// fail after the sender's retries are journaled for reconciliation.
type PoolNotifier struct {
	sender  Deliverer
	pool    WorkerPoolI
	journal Journal
	metrics Recorder
}

func NewPoolNotifier(sender Deliverer, pool WorkerPoolI, journal Journal, metrics Recorder) *PoolNotifier {
	return &PoolNotifier{
		sender:  sender,
		pool:    pool,
		journal: journal,
		metrics: metrics,
	}
}

func (p *PoolNotifier) Notify(ctx context.Context, userID uuid.UUID, event Event, payload map[string]string) error {
	n := Notification{UserID: userID, Event: event, Payload: payload}
	// The request context ends with the handler; delivery must outlive it.
	deliveryCtx := context.WithoutCancel(ctx)
	return p.pool.AddTask(ctx, func() error {
		ctx, cancel := context.WithTimeout(deliveryCtx, deliveryTimeout)
		defer cancel()
		return p.deliver(ctx, n)
	})
}

func (p *PoolNotifier) deliver(ctx context.Context, n Notification) error {
	err := p.sender.Send(ctx, n)
	if p.metrics != nil {
		p.metrics.NotificationDelivered(string(n.Event), err == nil)
	}
	if err == nil {
		return nil
	}

	zap.L().Error("Notification delivery failed",
		zap.String("event", string(n.Event)), zap.String("userID", n.UserID.String()), zap.Error(err))
	if p.journal != nil {
		if _, jerr := p.journal.Record(failureEntry(n, err)); jerr != nil {
			zap.L().Error("Failed to journal notification failure", zap.Error(jerr))
		}
	}
	return err
}

func (p *PoolNotifier) Close() {
	p.pool.Close()
}
