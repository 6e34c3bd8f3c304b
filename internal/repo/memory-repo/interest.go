package memoryrepo

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/jobmart/internal/domain"
)

type InterestRepo struct {
	store *Store
}

func NewInterestRepo(store *Store) *InterestRepo {
	return &InterestRepo{store: store}
}

// Create checks for an active duplicate and inserts under the same write lock.
func (r *InterestRepo) Create(ctx context.Context, interest *domain.Interest) (*domain.Interest, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.interests {
		if existing.JobID == interest.JobID && existing.ProviderID == interest.ProviderID &&
			existing.Status != domain.InterestWithdrawn {
			return nil, domain.ErrAlreadyExists
		}
	}

	s.interests[interest.ID] = copyInterest(interest)
	id := interest.ID
	record(ctx, func() { delete(s.interests, id) })
	return copyInterest(interest), nil
}

func (r *InterestRepo) Get(_ context.Context, id uuid.UUID) (*domain.Interest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	interest, ok := r.store.interests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyInterest(interest), nil
}

// Lock is a plain read: callers already hold the interest's keyed lock.
func (r *InterestRepo) Lock(ctx context.Context, id uuid.UUID) (*domain.Interest, error) {
	return r.Get(ctx, id)
}

func (r *InterestRepo) FindActive(_ context.Context, jobID, providerID uuid.UUID) (*domain.Interest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, interest := range r.store.interests {
		if interest.JobID == jobID && interest.ProviderID == providerID &&
			interest.Status != domain.InterestWithdrawn {
			return copyInterest(interest), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *InterestRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]domain.Interest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var interests []domain.Interest
	for _, interest := range r.store.interests {
		if interest.JobID == jobID {
			interests = append(interests, *copyInterest(interest))
		}
	}
	sort.Slice(interests, func(i, j int) bool {
		return interests[i].CreatedAt.Before(interests[j].CreatedAt)
	})
	return interests, nil
}

func (r *InterestRepo) ShareContact(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Interest, error) {
	return r.update(ctx, id, func(i *domain.Interest) error {
		if i.Status != domain.InterestPending {
			return domain.ErrWrongStatus
		}
		i.Status = domain.InterestContactShared
		i.ContactSharedAt = &at
		return nil
	})
}

func (r *InterestRepo) MarkPaid(ctx context.Context, id uuid.UUID, txID *uuid.UUID, at time.Time) (*domain.Interest, error) {
	return r.update(ctx, id, func(i *domain.Interest) error {
		if i.IsPaid() {
			return domain.ErrAlreadyPaid
		}
		if i.Status != domain.InterestContactShared {
			return domain.ErrWrongStatus
		}
		i.Status = domain.InterestPaidAccess
		i.PaymentMadeAt = &at
		i.PaymentTxID = txID
		return nil
	})
}

func (r *InterestRepo) Withdraw(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Interest, error) {
	return r.update(ctx, id, func(i *domain.Interest) error {
		if i.Status.IsTerminal() {
			return domain.ErrWrongStatus
		}
		i.Status = domain.InterestWithdrawn
		i.WithdrawnAt = &at
		return nil
	})
}

func (r *InterestRepo) WithdrawByJob(ctx context.Context, jobID uuid.UUID, at time.Time) ([]domain.Interest, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var withdrawn []domain.Interest
	for _, interest := range s.interests {
		if interest.JobID != jobID || interest.Status.IsTerminal() {
			continue
		}
		target, prev := interest, *interest
		interest.Status = domain.InterestWithdrawn
		interest.WithdrawnAt = &at
		record(ctx, func() { *target = prev })
		withdrawn = append(withdrawn, *copyInterest(interest))
	}
	return withdrawn, nil
}

// update applies mutate to the stored interest. mutate checks the
// transition before touching any field.
func (r *InterestRepo) update(ctx context.Context, id uuid.UUID, mutate func(*domain.Interest) error) (*domain.Interest, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	interest, ok := s.interests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	prev := *interest
	if err := mutate(interest); err != nil {
		return nil, err
	}
	record(ctx, func() { *interest = prev })
	return copyInterest(interest), nil
}

func copyInterest(i *domain.Interest) *domain.Interest {
	c := *i
	return &c
}
