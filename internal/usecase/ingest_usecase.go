package usecase

import (
	"context"
	"log"

	"jobradar/internal/domain/job"
	"jobradar/internal/repository"
)

// IngestSummary reports one ingestion run. Inserted+Duplicates may fall
// short of Total when individual inserts fail for reasons other than the
// source_url uniqueness constraint; those are logged and skipped.
type IngestSummary struct {
	Inserted   int
	Duplicates int
	Total      int
}

type IngestUsecase interface {
	Ingest(ctx context.Context, filters job.Filters) (IngestSummary, error)
}

type synthesizer interface {
	Generate(jobTitle, location string, timeRangeDays int) []job.Candidate
}

type ingestNotifier interface {
	JobsIngested(jobTitle, location string, inserted, duplicates int)
}

type Ingestor struct {
	synth    synthesizer
	repo     repository.JobListingRepository
	cache    SearchCache
	notifier ingestNotifier
	logger   *log.Logger
}

func NewIngestor(synth synthesizer, repo repository.JobListingRepository, cache SearchCache, notifier ingestNotifier, logger *log.Logger) *Ingestor {
	return &Ingestor{synth: synth, repo: repo, cache: cache, notifier: notifier, logger: logger}
}

// Ingest synthesizes one candidate batch and attempts to persist each
// candidate independently. A duplicate source_url is counted, any other
// insert failure is logged and skipped, and neither aborts the batch.
func (u *Ingestor) Ingest(ctx context.Context, filters job.Filters) (IngestSummary, error) {
	if !filters.Valid() {
		return IngestSummary{}, ErrInvalidInput
	}

	candidates := u.synth.Generate(filters.JobTitle, filters.Location, filters.TimeRangeDays)
	if u.logger != nil {
		u.logger.Printf("[Ingest] Generated %d candidates title=%q location=%q days=%d",
			len(candidates), filters.JobTitle, filters.Location, filters.TimeRangeDays)
	}

	summary := IngestSummary{Total: len(candidates)}
	for _, c := range candidates {
		outcome, err := u.repo.Insert(ctx, c)
		if err != nil {
			if u.logger != nil {
				u.logger.Printf("[Ingest] Insert error url=%s err=%v", c.SourceURL, err)
			}
			continue
		}
		switch outcome {
		case repository.OutcomeInserted:
			summary.Inserted++
		case repository.OutcomeDuplicate:
			summary.Duplicates++
		}
	}

	if u.logger != nil {
		u.logger.Printf("[Ingest] Done inserted=%d duplicates=%d total=%d",
			summary.Inserted, summary.Duplicates, summary.Total)
	}

	if summary.Inserted > 0 && u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, pageCachePattern); err != nil && u.logger != nil {
			u.logger.Printf("[Ingest] Cache invalidation error: %v", err)
		}
	}
	if u.notifier != nil {
		u.notifier.JobsIngested(filters.JobTitle, filters.Location, summary.Inserted, summary.Duplicates)
	}

	return summary, nil
}

var _ IngestUsecase = (*Ingestor)(nil)
