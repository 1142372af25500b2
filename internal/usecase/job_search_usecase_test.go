package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"jobradar/internal/domain/job"
)

func nowForTests() time.Time {
	return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
}

func seedRepo(t *testing.T, repo *memRepo, n int) {
	t.Helper()
	today := nowForTests().Truncate(24 * time.Hour)
	for i := 0; i < n; i++ {
		_, err := repo.Insert(context.Background(), job.Candidate{
			Title:       fmt.Sprintf("Data Analyst %02d", i),
			CompanyName: fmt.Sprintf("Company %02d", n-i),
			Location:    "Karachi, Pakistan",
			PostingDate: today.AddDate(0, 0, -(i % 7)),
			SourceURL:   fmt.Sprintf("https://linkedin.com/jobs/view/%010d", i),
		})
		if err != nil {
			t.Fatalf("seed insert %d: %v", i, err)
		}
	}
	// One listing outside every filter dimension.
	_, _ = repo.Insert(context.Background(), job.Candidate{
		Title:       "Barista",
		CompanyName: "Cafe",
		Location:    "Vienna",
		PostingDate: today.AddDate(0, 0, -30),
		SourceURL:   "https://linkedin.com/jobs/view/9999999999",
	})
}

func newTestReader(repo *memRepo) *JobSearch {
	r := NewJobSearch(repo, nil, nil)
	r.now = nowForTests
	return r
}

func TestFetchPage_ValidatesInput(t *testing.T) {
	r := newTestReader(&memRepo{})

	if _, err := r.FetchPage(context.Background(), job.Filters{}, 1, job.DefaultSort); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty filters, got %v", err)
	}
	if _, err := r.FetchPage(context.Background(), testFilters(), 0, job.DefaultSort); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for page 0, got %v", err)
	}
}

func TestFetchPage_EmptyResultIsSuccess(t *testing.T) {
	r := newTestReader(&memRepo{})

	page, err := r.FetchPage(context.Background(), testFilters(), 1, job.DefaultSort)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.TotalCount != 0 || len(page.Jobs) != 0 || page.TotalPages != 0 {
		t.Fatalf("expected empty page, got %+v", page)
	}
}

func TestFetchPage_FilterCorrectness(t *testing.T) {
	repo := &memRepo{}
	seedRepo(t, repo, 5)
	r := newTestReader(repo)

	page, err := r.FetchPage(context.Background(), testFilters(), 1, job.DefaultSort)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.TotalCount != 5 {
		t.Fatalf("expected 5 matches, barista excluded, got %d", page.TotalCount)
	}
	for _, l := range page.Jobs {
		if l.Title == "Barista" {
			t.Fatalf("non-matching listing leaked into results")
		}
	}
}

func TestFetchPage_PaginationCompleteness(t *testing.T) {
	repo := &memRepo{}
	seedRepo(t, repo, 25)
	r := newTestReader(repo)

	first, err := r.FetchPage(context.Background(), testFilters(), 1, job.SortTitleAZ)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if first.TotalCount != 25 {
		t.Fatalf("expected total 25, got %d", first.TotalCount)
	}
	if first.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", first.TotalPages)
	}
	if len(first.Jobs) != job.PageSize {
		t.Fatalf("expected a full page of %d, got %d", job.PageSize, len(first.Jobs))
	}

	seen := map[string]bool{}
	for p := 1; p <= first.TotalPages; p++ {
		page, err := r.FetchPage(context.Background(), testFilters(), p, job.SortTitleAZ)
		if err != nil {
			t.Fatalf("page %d: %v", p, err)
		}
		for _, l := range page.Jobs {
			if seen[l.SourceURL] {
				t.Fatalf("listing %s appears on more than one page", l.SourceURL)
			}
			seen[l.SourceURL] = true
		}
	}
	if len(seen) != 25 {
		t.Fatalf("concatenated pages hold %d listings, want 25", len(seen))
	}
}

func TestFetchPage_SortKeys(t *testing.T) {
	repo := &memRepo{}
	seedRepo(t, repo, 12)
	r := newTestReader(repo)

	cases := []struct {
		sort job.SortKey
		le   func(a, b job.Listing) bool
	}{
		{job.SortDateDesc, func(a, b job.Listing) bool { return !a.PostingDate.Before(b.PostingDate) }},
		{job.SortDateAsc, func(a, b job.Listing) bool { return !a.PostingDate.After(b.PostingDate) }},
		{job.SortCompanyAZ, func(a, b job.Listing) bool { return a.CompanyName <= b.CompanyName }},
		{job.SortTitleAZ, func(a, b job.Listing) bool { return a.Title <= b.Title }},
	}

	for _, tc := range cases {
		page, err := r.FetchPage(context.Background(), testFilters(), 1, tc.sort)
		if err != nil {
			t.Fatalf("%s: %v", tc.sort, err)
		}
		for i := 1; i < len(page.Jobs); i++ {
			if !tc.le(page.Jobs[i-1], page.Jobs[i]) {
				t.Fatalf("%s: adjacent results out of order at %d", tc.sort, i)
			}
		}
	}
}

func TestFetchPage_ChangeSortIsPermutation(t *testing.T) {
	repo := &memRepo{}
	seedRepo(t, repo, 8)

	s := NewSearchSession(nil, newTestReader(repo), nil)
	first, err := s.Search(context.Background(), testFilters())
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	resorted, err := s.ChangeSort(context.Background(), job.SortTitleAZ)
	if err != nil {
		t.Fatalf("change sort: %v", err)
	}
	if resorted.TotalCount != first.TotalCount {
		t.Fatalf("total changed across re-sort: %d vs %d", resorted.TotalCount, first.TotalCount)
	}

	urls := map[string]bool{}
	for _, l := range first.Jobs {
		urls[l.SourceURL] = true
	}
	for _, l := range resorted.Jobs {
		if !urls[l.SourceURL] {
			t.Fatalf("re-sorted page is not a permutation of the original page")
		}
	}
}
