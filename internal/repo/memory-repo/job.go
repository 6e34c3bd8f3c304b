package memoryrepo

import (
	"context"

	"github.com/google/uuid"

	"github.com/GlebRadaev/jobmart/internal/domain"
)

type JobRepo struct {
	store *Store
}

func NewJobRepo(store *Store) *JobRepo {
	return &JobRepo{store: store}
}

// Put seeds or replaces a job. The listings module owns jobs, so only tests
// and local runs call it.
func (r *JobRepo) Put(job *domain.Job) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c := *job
	r.store.jobs[job.ID] = &c
}

func (r *JobRepo) Get(_ context.Context, id uuid.UUID) (*domain.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	job, ok := r.store.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *job
	return &c, nil
}

func (r *JobRepo) MarkInProgress(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	return r.setStatus(ctx, id, domain.JobInProgress, func(s domain.JobStatus) bool {
		return s == domain.JobOpen
	})
}

func (r *JobRepo) Close(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	return r.setStatus(ctx, id, domain.JobClosed, func(s domain.JobStatus) bool {
		return s != domain.JobClosed
	})
}

func (r *JobRepo) setStatus(ctx context.Context, id uuid.UUID, status domain.JobStatus, allowed func(domain.JobStatus) bool) (*domain.Job, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if !allowed(job.Status) {
		return nil, domain.ErrJobNotActive
	}
	prev := job.Status
	job.Status = status
	record(ctx, func() { job.Status = prev })
	c := *job
	return &c, nil
}
