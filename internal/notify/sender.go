package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/jobmart/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

// Sender posts a notification to {NOTIFY_ADDRESS}/api/notifications.
type Sender struct {
	url           string
	client        clients.HTTPClientI
	maxRetries    int
	retryInterval time.Duration
}

func NewSender(address string, client clients.HTTPClientI) *Sender {
	return &Sender{
		url:           address + "/api/notifications",
		client:        client,
		maxRetries:    maxRetries,
		retryInterval: retryInterval,
	}
}

func (s *Sender) Send(ctx context.Context, n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		resp, err := s.client.Post(ctx, s.url, body, nil)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if attempt < s.maxRetries {
				if err := s.sleep(ctx, s.retryInterval*time.Duration(attempt)); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("failed to deliver %s to %s after %d retries: %w", n.Event, n.UserID, s.maxRetries, err)
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			if err := s.handleRateLimit(ctx, n, resp.Header, attempt); err != nil {
				return err
			}
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return nil
		case resp.StatusCode >= 500:
			zap.L().Warn("Notification service failed, retrying",
				zap.String("event", string(n.Event)), zap.Int("status", resp.StatusCode), zap.Int("attempt", attempt))
			if attempt < s.maxRetries {
				if err := s.sleep(ctx, s.retryInterval*time.Duration(attempt)); err != nil {
					return err
				}
			}
		default:
			zap.L().Error("Unexpected status code", zap.Int("status", resp.StatusCode), zap.String("event", string(n.Event)))
			return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
		}
	}
	return fmt.Errorf("failed to deliver %s to %s after %d retries", n.Event, n.UserID, s.maxRetries)
}

func (s *Sender) handleRateLimit(ctx context.Context, n Notification, respHeaders http.Header, attempt int) error {
	retryAfter := s.retryInterval * time.Duration(attempt)
	if header := respHeaders.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.String("event", string(n.Event)),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	if attempt == s.maxRetries {
		return nil
	}
	return s.sleep(ctx, retryAfter)
}

func (s *Sender) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
