package accessservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/jobmart/internal/domain"
)

type InterestRepo interface {
	FindActive(ctx context.Context, jobID, providerID uuid.UUID) (*domain.Interest, error)
}

type JobRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Job, error)
}

// Service answers whether a conversation is unlocked. Every answer is read
// from storage; nothing is cached.
type Service struct {
	interests InterestRepo
	jobs      JobRepo
}

func New(interests InterestRepo, jobs JobRepo) *Service {
	return &Service{
		interests: interests,
		jobs:      jobs,
	}
}

// CanMessage reports whether requester may message inside the conversation
// between the job's poster and provider. It holds only once the provider's
// interest reached PAID_ACCESS, and only for those two parties.
func (s *Service) CanMessage(ctx context.Context, jobID, providerID, requesterID uuid.UUID) (bool, error) {
	interest, err := s.interests.FindActive(ctx, jobID, providerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		zap.L().Error("failed to read interest", zap.Error(err))
		return false, err
	}
	if interest.Status != domain.InterestPaidAccess {
		return false, nil
	}
	if requesterID == providerID {
		return true, nil
	}

	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		zap.L().Error("failed to read job", zap.Error(err))
		return false, err
	}
	return requesterID == job.PosterID, nil
}
