package memoryrepo

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/jobmart/internal/domain"
)

type QuoteRepo struct {
	store *Store
}

func NewQuoteRepo(store *Store) *QuoteRepo {
	return &QuoteRepo{store: store}
}

// CreateBounded counts, checks for a duplicate and inserts under one write
// lock.
func (r *QuoteRepo) CreateBounded(ctx context.Context, quote *domain.Quote, limit int) (*domain.Quote, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, existing := range s.quotes {
		if existing.JobID != quote.JobID {
			continue
		}
		if existing.ProviderID == quote.ProviderID {
			return nil, domain.ErrAlreadyQuoted
		}
		if existing.Status != domain.QuoteRejected {
			count++
		}
	}
	if count >= limit {
		return nil, domain.ErrQuoteLimitReached
	}

	stored := *quote
	s.quotes[quote.ID] = &stored
	s.quoteSeq[quote.ID] = s.nextSeq()
	id := quote.ID
	record(ctx, func() {
		delete(s.quotes, id)
		delete(s.quoteSeq, id)
	})
	c := stored
	return &c, nil
}

func (r *QuoteRepo) Get(_ context.Context, id uuid.UUID) (*domain.Quote, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	quote, ok := r.store.quotes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *quote
	return &c, nil
}

func (r *QuoteRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]domain.Quote, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var quotes []domain.Quote
	for _, quote := range s.quotes {
		if quote.JobID == jobID {
			quotes = append(quotes, *quote)
		}
	}
	sort.Slice(quotes, func(i, j int) bool {
		return s.quoteSeq[quotes[i].ID] < s.quoteSeq[quotes[j].ID]
	})
	return quotes, nil
}

func (r *QuoteRepo) Accept(ctx context.Context, quote *domain.Quote, at time.Time) (*domain.Quote, []domain.Quote, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.quotes[quote.ID]
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	if target.Status != domain.QuotePending {
		return nil, nil, domain.ErrWrongStatus
	}

	decide := func(q *domain.Quote, status domain.QuoteStatus) {
		prev := *q
		q.Status = status
		q.DecidedAt = &at
		record(ctx, func() { *q = prev })
	}

	decide(target, domain.QuoteAccepted)
	var rejected []domain.Quote
	for _, sibling := range s.quotes {
		if sibling.JobID == target.JobID && sibling.ID != target.ID && sibling.Status == domain.QuotePending {
			decide(sibling, domain.QuoteRejected)
			rejected = append(rejected, *sibling)
		}
	}
	sort.Slice(rejected, func(i, j int) bool {
		return s.quoteSeq[rejected[i].ID] < s.quoteSeq[rejected[j].ID]
	})
	accepted := *target
	return &accepted, rejected, nil
}
