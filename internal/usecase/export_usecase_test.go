package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"jobradar/internal/domain/job"
)

func TestExportCSV_EmptyMatchSet(t *testing.T) {
	e := NewExporter(&memRepo{}, nil)
	e.now = nowForTests

	_, _, err := e.ExportCSV(context.Background(), testFilters(), job.DefaultSort)
	if !errors.Is(err, ErrNoListings) {
		t.Fatalf("expected ErrNoListings, got %v", err)
	}
}

func TestExportCSV_InvalidFilters(t *testing.T) {
	e := NewExporter(&memRepo{}, nil)
	_, _, err := e.ExportCSV(context.Background(), job.Filters{}, job.DefaultSort)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestExportCSV_ContentAndFilename(t *testing.T) {
	repo := &memRepo{}
	seedRepo(t, repo, 3)

	e := NewExporter(repo, nil)
	e.now = nowForTests

	data, filename, err := e.ExportCSV(context.Background(), testFilters(), job.SortTitleAZ)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if want := "job_listings_20260601_120000.csv"; filename != want {
		t.Fatalf("filename = %q, want %q", filename, want)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header + 3 rows, got %d records", len(records))
	}
	if records[0][0] != "title" || records[0][1] != "company_name" {
		t.Fatalf("unexpected header: %v", records[0])
	}

	// title_az ordering carries into the file
	for i := 2; i < len(records); i++ {
		if records[i-1][0] > records[i][0] {
			t.Fatalf("rows out of title order: %q before %q", records[i-1][0], records[i][0])
		}
	}
	if _, err := time.Parse("2006-01-02", records[1][3]); err != nil {
		t.Fatalf("posting_date column not a date: %v", err)
	}
}
