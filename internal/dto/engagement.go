package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/jobmart/internal/domain"
)

type InterestResponseDTO struct {
	ID              uuid.UUID  `json:"id" example:"2b1f0c9e-8a57-4b8e-9d0c-5f2e3a4b6c7d"`
	JobID           uuid.UUID  `json:"job_id" example:"9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d"`
	ProviderID      uuid.UUID  `json:"provider_id" example:"1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"`
	Status          string     `json:"status" example:"CONTACT_SHARED"`
	CreatedAt       time.Time  `json:"created_at" example:"2024-05-01T12:00:00Z"`
	ContactSharedAt *time.Time `json:"contact_shared_at,omitempty"`
	PaymentMadeAt   *time.Time `json:"payment_made_at,omitempty"`
	WithdrawnAt     *time.Time `json:"withdrawn_at,omitempty"`
}

func NewInterestResponse(i *domain.Interest) InterestResponseDTO {
	return InterestResponseDTO{
		ID:              i.ID,
		JobID:           i.JobID,
		ProviderID:      i.ProviderID,
		Status:          string(i.Status),
		CreatedAt:       i.CreatedAt,
		ContactSharedAt: i.ContactSharedAt,
		PaymentMadeAt:   i.PaymentMadeAt,
		WithdrawnAt:     i.WithdrawnAt,
	}
}

func NewInterestsResponse(interests []domain.Interest) []InterestResponseDTO {
	out := make([]InterestResponseDTO, 0, len(interests))
	for i := range interests {
		out = append(out, NewInterestResponse(&interests[i]))
	}
	return out
}

type PaymentResponseDTO struct {
	Interest    InterestResponseDTO     `json:"interest"`
	Transaction *TransactionResponseDTO `json:"transaction,omitempty"`
	Replayed    bool                    `json:"replayed" example:"false"`
}

type CloseJobResponseDTO struct {
	Withdrawn int `json:"withdrawn" example:"3"`
}

type QuoteRequestDTO struct {
	Price int64 `json:"price" example:"2500"`
}

type QuoteResponseDTO struct {
	ID         uuid.UUID  `json:"id" example:"3c4d5e6f-7a8b-4c9d-8e0f-1a2b3c4d5e6f"`
	JobID      uuid.UUID  `json:"job_id" example:"9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d"`
	ProviderID uuid.UUID  `json:"provider_id" example:"1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"`
	Price      int64      `json:"price" example:"2500"`
	Status     string     `json:"status" example:"PENDING"`
	CreatedAt  time.Time  `json:"created_at" example:"2024-05-01T12:00:00Z"`
	DecidedAt  *time.Time `json:"decided_at,omitempty"`
}

func NewQuoteResponse(q *domain.Quote) QuoteResponseDTO {
	return QuoteResponseDTO{
		ID:         q.ID,
		JobID:      q.JobID,
		ProviderID: q.ProviderID,
		Price:      q.Price,
		Status:     string(q.Status),
		CreatedAt:  q.CreatedAt,
		DecidedAt:  q.DecidedAt,
	}
}

func NewQuotesResponse(quotes []domain.Quote) []QuoteResponseDTO {
	out := make([]QuoteResponseDTO, 0, len(quotes))
	for i := range quotes {
		out = append(out, NewQuoteResponse(&quotes[i]))
	}
	return out
}

type AcceptQuoteResponseDTO struct {
	Accepted QuoteResponseDTO   `json:"accepted"`
	Rejected []QuoteResponseDTO `json:"rejected"`
	JobID    uuid.UUID          `json:"job_id"`
	JobState string             `json:"job_status" example:"IN_PROGRESS"`
}

type AccessResponseDTO struct {
	CanMessage bool `json:"can_message" example:"true"`
}

type ConversationResponseDTO struct {
	ConversationID string `json:"conversation_id" example:"conv-7"`
}
