package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"time"

	"jobradar/internal/domain/job"
	"jobradar/internal/repository"
)

type ExportUsecase interface {
	ExportCSV(ctx context.Context, filters job.Filters, sort job.SortKey) (data []byte, filename string, err error)
}

type Exporter struct {
	repo   repository.JobListingRepository
	logger *log.Logger
	now    func() time.Time
}

func NewExporter(repo repository.JobListingRepository, logger *log.Logger) *Exporter {
	return &Exporter{repo: repo, logger: logger, now: time.Now}
}

var csvHeader = []string{"title", "company_name", "location", "posting_date", "source_url", "description", "created_at"}

// ExportCSV renders every listing matching the filters, in the given order,
// as CSV. The filename embeds the export timestamp.
func (e *Exporter) ExportCSV(ctx context.Context, filters job.Filters, sort job.SortKey) ([]byte, string, error) {
	if !filters.Valid() {
		return nil, "", ErrInvalidInput
	}

	rows, err := e.repo.ListAll(ctx, repository.ListQuery{
		Title:    filters.JobTitle,
		Location: filters.Location,
		Since:    filters.Since(e.now()),
		Sort:     sort,
		Page:     1,
	})
	if err != nil {
		if e.logger != nil {
			e.logger.Printf("[Export] List error: %v", err)
		}
		return nil, "", ErrInternal
	}
	if len(rows) == 0 {
		return nil, "", ErrNoListings
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, "", ErrInternal
	}
	for _, l := range rows {
		desc := ""
		if l.Description != nil {
			desc = *l.Description
		}
		rec := []string{
			l.Title,
			l.CompanyName,
			l.Location,
			l.PostingDate.Format("2006-01-02"),
			l.SourceURL,
			desc,
			l.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(rec); err != nil {
			return nil, "", ErrInternal
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", ErrInternal
	}

	filename := fmt.Sprintf("job_listings_%s.csv", e.now().UTC().Format("20060102_150405"))
	if e.logger != nil {
		e.logger.Printf("[Export] Wrote %d listings to %s", len(rows), filename)
	}
	return buf.Bytes(), filename, nil
}

var _ ExportUsecase = (*Exporter)(nil)
