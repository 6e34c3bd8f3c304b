package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/jobmart/pkg/clients"
)

var ErrEmptyConversationID = errors.New("conversation service returned no id")

type ConversationClient struct {
	url    string
	client clients.HTTPClientI
}

func NewConversationClient(address string, client clients.HTTPClientI) *ConversationClient {
	return &ConversationClient{url: address + "/api/conversations", client: client}
}

type ensureRequest struct {
	JobID      uuid.UUID `json:"job_id"`
	ProviderID uuid.UUID `json:"provider_id"`
}

type ensureResponse struct {
	ID string `json:"id"`
}

// Ensure creates the conversation for (jobID, providerID) or returns the
// existing one. The conversation service treats the pair as its key.
func (c *ConversationClient) Ensure(ctx context.Context, jobID, providerID uuid.UUID) (string, error) {
	body, err := json.Marshal(ensureRequest{JobID: jobID, ProviderID: providerID})
	if err != nil {
		return "", err
	}

	resp, err := c.client.Post(ctx, c.url, body, nil)
	if err != nil {
		return "", fmt.Errorf("failed to ensure conversation: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("%w: conversations returned %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var out ensureResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return "", fmt.Errorf("failed to parse conversation: %w", err)
	}
	if out.ID == "" {
		return "", ErrEmptyConversationID
	}
	return out.ID, nil
}
