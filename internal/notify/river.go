package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

const riverMaxAttempts = 5

// NotificationArgs is the River job carrying one notification.
type NotificationArgs struct {
	Notification
}

func (NotificationArgs) Kind() string { return "notification" }

func (NotificationArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: riverMaxAttempts}
}

// Inserter is satisfied by *river.Client[pgx.Tx].
type Inserter interface {
	Insert(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (*rivertype.JobInsertResult, error)
}

// RiverNotifier enqueues notifications as durable River jobs.
type RiverNotifier struct {
	client Inserter
}

func NewRiverNotifier(client Inserter) *RiverNotifier {
	return &RiverNotifier{client: client}
}

func (r *RiverNotifier) Notify(ctx context.Context, userID uuid.UUID, event Event, payload map[string]string) error {
	args := NotificationArgs{Notification{UserID: userID, Event: event, Payload: payload}}
	if _, err := r.client.Insert(ctx, args, nil); err != nil {
		return fmt.Errorf("failed to enqueue %s notification: %w", event, err)
	}
	return nil
}

type NotificationWorker struct {
	river.WorkerDefaults[NotificationArgs]
	sender  Deliverer
	journal Journal
	metrics Recorder
}

func NewNotificationWorker(sender Deliverer, journal Journal, metrics Recorder) *NotificationWorker {
	return &NotificationWorker{sender: sender, journal: journal, metrics: metrics}
}

// Work sends one notification. River reschedules on error; the failure is
// journaled only once the last attempt is spent.
func (w *NotificationWorker) Work(ctx context.Context, job *river.Job[NotificationArgs]) error {
	n := job.Args.Notification
	err := w.sender.Send(ctx, n)
	if w.metrics != nil {
		w.metrics.NotificationDelivered(string(n.Event), err == nil)
	}
	if err == nil {
		return nil
	}

	if job.JobRow != nil && job.Attempt >= job.MaxAttempts && w.journal != nil {
		if _, jerr := w.journal.Record(failureEntry(n, err)); jerr != nil {
			zap.L().Error("Failed to journal notification failure", zap.Error(jerr))
		}
	}
	return err
}
