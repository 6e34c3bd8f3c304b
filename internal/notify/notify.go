// Package notify delivers engagement events to the notification service.
// Delivery is fire-and-forget for callers: Notify only enqueues, either on
// an in-process worker pool or on a River queue in Postgres.
package notify

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/jobmart/internal/reconcile"
)

type Event string

const (
	EventInterestCreated   Event = "interest_created"
	EventContactShared     Event = "contact_shared"
	EventAccessPaid        Event = "access_paid"
	EventInterestWithdrawn Event = "interest_withdrawn"
	EventQuoteSubmitted    Event = "quote_submitted"
	EventQuoteAccepted     Event = "quote_accepted"
	EventQuoteRejected     Event = "quote_rejected"
	EventFundingApproved   Event = "funding_approved"
	EventFundingRejected   Event = "funding_rejected"
)

// Notification is the body posted to the notification service.
type Notification struct {
	UserID  uuid.UUID         `json:"user_id"`
	Event   Event             `json:"event"`
	Payload map[string]string `json:"payload,omitempty"`
}

type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, event Event, payload map[string]string) error
}

type Deliverer interface {
	Send(ctx context.Context, n Notification) error
}

type Journal interface {
	Record(entry reconcile.Entry) (*reconcile.Entry, error)
}

type Recorder interface {
	NotificationDelivered(event string, ok bool)
}

// NotifyAll enqueues every notification in batch and returns the first
// enqueue error.
func NotifyAll(ctx context.Context, n Notifier, batch []Notification) error {
	var g errgroup.Group
	for _, item := range batch {
		g.Go(func() error {
			return n.Notify(ctx, item.UserID, item.Event, item.Payload)
		})
	}
	return g.Wait()
}

func failureEntry(n Notification, err error) reconcile.Entry {
	return reconcile.Entry{
		Kind:    reconcile.KindSideEffect,
		Command: "notify:" + string(n.Event),
		Subject: n.UserID.String(),
		Error:   err.Error(),
	}
}
