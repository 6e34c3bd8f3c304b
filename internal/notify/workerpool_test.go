package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name           string
		numTasks       int
		numWorkers     int
		expectedErrors int
	}{
		{
			name:           "Test worker pool with simple tasks",
			numTasks:       5,
			numWorkers:     2,
			expectedErrors: 0,
		},
		{
			name:           "Test worker pool with error in task",
			numTasks:       2,
			numWorkers:     2,
			expectedErrors: 1,
		},
		{
			name:           "Test worker pool with zero size",
			numTasks:       3,
			numWorkers:     0,
			expectedErrors: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)
			defer wp.Close()

			var mu sync.Mutex
			var taskExecutionCount int
			var errorCount int
			var wg sync.WaitGroup

			for i := 0; i < tt.numTasks; i++ {
				wg.Add(1)
				task := func(i int) Task {
					return func() error {
						defer wg.Done()
						if i == tt.numTasks-1 && tt.expectedErrors > 0 {
							mu.Lock()
							errorCount++
							mu.Unlock()
							return assert.AnError
						}
						time.Sleep(20 * time.Millisecond)
						mu.Lock()
						taskExecutionCount++
						mu.Unlock()
						return nil
					}
				}(i)

				err := wp.AddTask(context.Background(), task)
				require.NoError(t, err, "failed to add task to pool")
			}

			wg.Wait()

			assert.Equal(t, tt.numTasks-tt.expectedErrors, taskExecutionCount, "number of executed tasks does not match")
			assert.Equal(t, tt.expectedErrors, errorCount, "number of errors does not match")
		})
	}
}

func TestWorkerPool_CanceledContext(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	block := make(chan struct{})
	defer close(block)

	// Occupy the worker and fill the buffer so the next AddTask has to wait.
	require.NoError(t, wp.AddTask(context.Background(), func() error { <-block; return nil }))
	require.NoError(t, wp.AddTask(context.Background(), func() error { <-block; return nil }))
	require.Eventually(t, func() bool { return len(wp.pool) == 1 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.AddTask(ctx, func() error {
		t.Error("Task should not be executed")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkerPool_CloseDrains(t *testing.T) {
	wp := NewWorkerPool(2)

	var mu sync.Mutex
	done := 0
	for i := 0; i < 6; i++ {
		require.NoError(t, wp.AddTask(context.Background(), func() error {
			time.Sleep(5 * time.Millisecond)
			mu.Lock()
			done++
			mu.Unlock()
			return nil
		}))
	}

	wp.Close()
	wp.Close()

	assert.Equal(t, 6, done)
}

func TestWorkerPool_FullPoolDoesNotBlock(t *testing.T) {
	wp := NewWorkerPool(1)
	wp.wait = 10 * time.Millisecond

	block := make(chan struct{})
	require.NoError(t, wp.AddTask(context.Background(), func() error { <-block; return nil }))
	require.Eventually(t, func() bool { return len(wp.pool) == 0 }, time.Second, time.Millisecond)
	require.NoError(t, wp.AddTask(context.Background(), func() error { <-block; return nil }))

	start := time.Now()
	err := wp.AddTask(context.WithoutCancel(context.Background()), func() error { return nil })
	assert.ErrorIs(t, err, ErrPoolFull)
	assert.Less(t, time.Since(start), time.Second)

	close(block)
	wp.Close()
}

func TestWorkerPool_AddAfterClose(t *testing.T) {
	wp := NewWorkerPool(1)
	wp.Close()

	err := wp.AddTask(context.Background(), func() error { return nil })
	assert.ErrorIs(t, err, ErrPoolClosed)
}

type blockingSender struct {
	release chan struct{}
}

func (s *blockingSender) Send(ctx context.Context, _ Notification) error {
	select {
	case <-s.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestPoolNotifier_SaturatedPoolReturns(t *testing.T) {
	sender := &blockingSender{release: make(chan struct{})}
	wp := NewWorkerPool(1)
	wp.wait = 10 * time.Millisecond
	notifier := NewPoolNotifier(sender, wp, nil, nil)
	ctx := context.WithoutCancel(context.Background())

	require.NoError(t, notifier.Notify(ctx, uuid.New(), EventAccessPaid, nil))
	require.Eventually(t, func() bool { return len(wp.pool) == 0 }, time.Second, time.Millisecond)
	require.NoError(t, notifier.Notify(ctx, uuid.New(), EventAccessPaid, nil))

	done := make(chan error, 1)
	go func() { done <- notifier.Notify(ctx, uuid.New(), EventAccessPaid, nil) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrPoolFull)
	case <-time.After(2 * time.Second):
		t.Fatal("Notify blocked on a saturated pool")
	}

	close(sender.release)
	notifier.Close()
}
