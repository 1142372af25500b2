package usecase

import (
	"context"
	"log"
	"sync"

	"jobradar/internal/domain/job"
)

// SearchSession orchestrates the search flow for one client: a new search
// triggers best-effort ingestion then reads page 1 under the default sort;
// page and sort changes reuse the stored filters without re-ingesting.
//
// Sessions are addressed by a client-supplied id, so concurrent requests
// for the same session are possible; the mutex serializes them.
type SearchSession struct {
	ingest IngestUsecase
	reader PageReader
	logger *log.Logger

	mu      sync.Mutex
	filters *job.Filters
	sort    job.SortKey
	page    int
}

func NewSearchSession(ingest IngestUsecase, reader PageReader, logger *log.Logger) *SearchSession {
	return &SearchSession{ingest: ingest, reader: reader, logger: logger, sort: job.DefaultSort, page: 1}
}

// Search stores the filters, resets sort and page, runs ingestion, then
// serves page 1. Ingestion failure is reported in the log only: stored
// listings are still readable, so the search proceeds.
func (s *SearchSession) Search(ctx context.Context, filters job.Filters) (ResultPage, error) {
	if !filters.Valid() {
		return ResultPage{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = &filters
	s.sort = job.DefaultSort
	s.page = 1

	if s.ingest != nil {
		if _, err := s.ingest.Ingest(ctx, filters); err != nil && s.logger != nil {
			s.logger.Printf("[Session] Ingestion unavailable, serving stored listings: %v", err)
		}
	}

	return s.reader.FetchPage(ctx, filters, s.page, s.sort)
}

// ChangePage re-reads with the stored filters and sort at the requested
// page. It never re-runs ingestion.
func (s *SearchSession) ChangePage(ctx context.Context, page int) (ResultPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.filters == nil {
		return ResultPage{}, ErrNoActiveSearch
	}
	if page < 1 {
		return ResultPage{}, ErrInvalidInput
	}

	s.page = page
	return s.reader.FetchPage(ctx, *s.filters, s.page, s.sort)
}

// ChangeSort updates the stored sort key and re-reads the current page, not
// page 1, under the new ordering.
func (s *SearchSession) ChangeSort(ctx context.Context, sort job.SortKey) (ResultPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.filters == nil {
		return ResultPage{}, ErrNoActiveSearch
	}

	s.sort = sort
	return s.reader.FetchPage(ctx, *s.filters, s.page, s.sort)
}
