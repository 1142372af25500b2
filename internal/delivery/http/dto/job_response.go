package dto

import (
	"time"

	"jobradar/internal/domain/job"
	"jobradar/internal/usecase"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"company_name"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	PostingDate string    `json:"posting_date"`
	SourceURL   string    `json:"source_url"`
	CreatedAt   string    `json:"created_at"`
}

type SearchResponse struct {
	Jobs       []JobResponse `json:"jobs"`
	TotalCount int           `json:"total_count"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
}

type IngestResponse struct {
	Success    bool   `json:"success"`
	Inserted   int    `json:"inserted"`
	Duplicates int    `json:"duplicates"`
	Total      int    `json:"total"`
	Message    string `json:"message"`
}

type ClearResponse struct {
	Success bool   `json:"success"`
	Deleted int64  `json:"deleted"`
	Message string `json:"message"`
}

func FromListing(l job.Listing) JobResponse {
	desc := ""
	if l.Description != nil {
		desc = *l.Description
	}
	return JobResponse{
		ID:          l.ID,
		Title:       l.Title,
		CompanyName: l.CompanyName,
		Location:    l.Location,
		Description: desc,
		PostingDate: l.PostingDate.Format("2006-01-02"),
		SourceURL:   l.SourceURL,
		CreatedAt:   l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func FromResultPage(p usecase.ResultPage) SearchResponse {
	jobs := make([]JobResponse, 0, len(p.Jobs))
	for _, l := range p.Jobs {
		jobs = append(jobs, FromListing(l))
	}
	return SearchResponse{
		Jobs:       jobs,
		TotalCount: p.TotalCount,
		Page:       p.Page,
		TotalPages: p.TotalPages,
	}
}
