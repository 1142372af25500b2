package usecase

import (
	"context"
	"log"
	"time"

	"jobradar/internal/domain/job"
	"jobradar/internal/repository"
)

// ResultPage is one window over the filtered listing set plus the
// filter-scoped total, independent of the window.
type ResultPage struct {
	Jobs       []job.Listing `json:"jobs"`
	TotalCount int           `json:"total_count"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
}

type PageReader interface {
	FetchPage(ctx context.Context, filters job.Filters, page int, sort job.SortKey) (ResultPage, error)
}

type JobSearch struct {
	repo   repository.JobListingRepository
	cache  SearchCache
	logger *log.Logger
	now    func() time.Time
}

func NewJobSearch(repo repository.JobListingRepository, cache SearchCache, logger *log.Logger) *JobSearch {
	return &JobSearch{repo: repo, cache: cache, logger: logger, now: time.Now}
}

// FetchPage reads one page under the given filters and sort. An empty result
// set is a successful read with TotalCount 0, not an error.
func (u *JobSearch) FetchPage(ctx context.Context, filters job.Filters, page int, sort job.SortKey) (ResultPage, error) {
	if !filters.Valid() || page < 1 {
		return ResultPage{}, ErrInvalidInput
	}

	cacheKey := PageCacheKey(filters, page, sort)
	if u.cache != nil {
		var cached ResultPage
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Search] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	q := repository.ListQuery{
		Title:    filters.JobTitle,
		Location: filters.Location,
		Since:    filters.Since(u.now()),
		Sort:     sort,
		Page:     page,
	}

	rows, err := u.repo.List(ctx, q)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Search] List error: %v", err)
		}
		return ResultPage{}, ErrInternal
	}

	total, err := u.repo.Count(ctx, q)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Search] Count error: %v", err)
		}
		return ResultPage{}, ErrInternal
	}

	out := ResultPage{
		Jobs:       rows,
		TotalCount: total,
		Page:       page,
		TotalPages: (total + job.PageSize - 1) / job.PageSize,
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, 0)
	}
	return out, nil
}

var _ PageReader = (*JobSearch)(nil)
