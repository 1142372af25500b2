package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"jobradar/internal/domain/job"
	"jobradar/internal/repository"

	"github.com/google/uuid"
)

// memRepo is an in-memory JobListingRepository that honors the source_url
// uniqueness invariant and the filter, sort, and window semantics of the
// real queries.
type memRepo struct {
	mu   sync.Mutex
	rows []job.Listing
}

func (r *memRepo) Insert(_ context.Context, c job.Candidate) (repository.InsertOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.SourceURL == c.SourceURL {
			return repository.OutcomeDuplicate, nil
		}
	}

	desc := c.Description
	r.rows = append(r.rows, job.Listing{
		ID:          uuid.New(),
		Title:       c.Title,
		CompanyName: c.CompanyName,
		Location:    c.Location,
		Description: &desc,
		PostingDate: c.PostingDate,
		SourceURL:   c.SourceURL,
		CreatedAt:   time.Now().UTC(),
	})
	return repository.OutcomeInserted, nil
}

func (r *memRepo) matching(q repository.ListQuery) []job.Listing {
	out := make([]job.Listing, 0)
	for _, row := range r.rows {
		if !strings.Contains(strings.ToLower(row.Title), strings.ToLower(q.Title)) {
			continue
		}
		if !strings.Contains(strings.ToLower(row.Location), strings.ToLower(q.Location)) {
			continue
		}
		if row.PostingDate.Before(q.Since) {
			continue
		}
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch q.Sort {
		case job.SortDateAsc:
			return out[i].PostingDate.Before(out[j].PostingDate)
		case job.SortCompanyAZ:
			return out[i].CompanyName < out[j].CompanyName
		case job.SortTitleAZ:
			return out[i].Title < out[j].Title
		default:
			return out[i].PostingDate.After(out[j].PostingDate)
		}
	})
	return out
}

func (r *memRepo) List(_ context.Context, q repository.ListQuery) ([]job.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.matching(q)
	from := (q.Page - 1) * job.PageSize
	if from >= len(all) {
		return []job.Listing{}, nil
	}
	to := from + job.PageSize
	if to > len(all) {
		to = len(all)
	}
	return all[from:to], nil
}

func (r *memRepo) ListAll(_ context.Context, q repository.ListQuery) ([]job.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.matching(q), nil
}

func (r *memRepo) Count(_ context.Context, q repository.ListQuery) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.matching(q)), nil
}

func (r *memRepo) DeleteAll(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := int64(len(r.rows))
	r.rows = nil
	return n, nil
}

func (r *memRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.rows[:0]
	var deleted int64
	for _, row := range r.rows {
		if row.PostingDate.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, row)
	}
	r.rows = kept
	return deleted, nil
}

var _ repository.JobListingRepository = (*memRepo)(nil)
