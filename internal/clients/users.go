// Package clients talks to the profile and conversation services.
package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/jobmart/internal/domain"
	"github.com/GlebRadaev/jobmart/pkg/clients"
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

type UserClient struct {
	url    string
	client clients.HTTPClientI
}

func NewUserClient(address string, client clients.HTTPClientI) *UserClient {
	return &UserClient{url: address + "/api/users/", client: client}
}

// GetUser returns domain.ErrNotFound when the profile service has no such user.
func (c *UserClient) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	resp, err := c.client.Get(ctx, c.url+id.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domain.ErrNotFound
	default:
		return nil, fmt.Errorf("%w: users returned %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var user domain.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	if user.ID == uuid.Nil {
		user.ID = id
	}
	return &user, nil
}
