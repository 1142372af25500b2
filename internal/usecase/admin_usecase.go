package usecase

import (
	"context"
	"log"

	"jobradar/internal/repository"
)

type AdminUsecase interface {
	ClearAll(ctx context.Context) (int64, error)
}

// JobAdmin covers the administrative bulk operations. Clearing is a full
// wipe; there is no filtered delete.
type JobAdmin struct {
	repo   repository.JobListingRepository
	cache  SearchCache
	logger *log.Logger
}

func NewJobAdmin(repo repository.JobListingRepository, cache SearchCache, logger *log.Logger) *JobAdmin {
	return &JobAdmin{repo: repo, cache: cache, logger: logger}
}

func (u *JobAdmin) ClearAll(ctx context.Context) (int64, error) {
	deleted, err := u.repo.DeleteAll(ctx)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Admin] Clear error: %v", err)
		}
		return 0, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, pageCachePattern); err != nil && u.logger != nil {
			u.logger.Printf("[Admin] Cache invalidation error: %v", err)
		}
	}
	if u.logger != nil {
		u.logger.Printf("[Admin] Cleared %d listings", deleted)
	}
	return deleted, nil
}

var _ AdminUsecase = (*JobAdmin)(nil)
