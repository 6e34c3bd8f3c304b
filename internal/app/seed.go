package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/jobmart/internal/domain"
)

type jobSeed struct {
	ID             uuid.UUID `json:"id"`
	PosterID       uuid.UUID `json:"poster_id"`
	Category       string    `json:"category"`
	Status         string    `json:"status"`
	AccessFeeCoins int64     `json:"access_fee_coins"`
	ExpiresAt      time.Time `json:"expires_at"`
}

type jobPutter interface {
	Put(job *domain.Job)
}

// seedJobs loads the jobs of a memory deployment from a JSON array. Jobs are
// owned by the job service; in postgres mode they come from the shared table.
func seedJobs(path string, jobs jobPutter) error {
	if path == "" {
		zap.L().Warn("memory storage without JOBS_FILE, no job can be engaged")
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var seeds []jobSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	for _, s := range seeds {
		if s.ID == uuid.Nil || s.PosterID == uuid.Nil {
			return fmt.Errorf("job seed without id or poster_id in %s", path)
		}
		status := domain.JobStatus(s.Status)
		if status == "" {
			status = domain.JobOpen
		}
		jobs.Put(&domain.Job{
			ID:             s.ID,
			PosterID:       s.PosterID,
			Category:       s.Category,
			Status:         status,
			AccessFeeCoins: s.AccessFeeCoins,
			ExpiresAt:      s.ExpiresAt,
		})
	}
	zap.L().Info("jobs seeded", zap.Int("count", len(seeds)), zap.String("file", path))
	return nil
}
