package handler

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http/httptest"
	"testing"

	"jobradar/internal/delivery/http/middleware"
	"jobradar/internal/domain/job"
	"jobradar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type stubReader struct {
	lastFilters job.Filters
	lastPage    int
}

func (r *stubReader) FetchPage(_ context.Context, f job.Filters, page int, _ job.SortKey) (usecase.ResultPage, error) {
	r.lastFilters = f
	r.lastPage = page
	return usecase.ResultPage{Page: page, TotalPages: 1}, nil
}

func newSearchTestApp(reader usecase.PageReader) *fiber.App {
	logger := log.New(io.Discard, "", 0)
	sessions := usecase.NewSessionRegistry(func() *usecase.SearchSession {
		return usecase.NewSearchSession(nil, reader, logger)
	}, logger)

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	v1 := app.Group("/api").Group("/v1")
	NewSearchHandler(sessions).RegisterRoutes(v1)
	return app
}

func TestSearchHandler_DecodesStringTimeRange(t *testing.T) {
	reader := &stubReader{}
	app := newSearchTestApp(reader)

	body := []byte(`{"jobTitle":"Data Analyst","location":"Pakistan","timeRangeDays":"7"}`)
	req := httptest.NewRequest("POST", "/api/v1/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if reader.lastFilters.TimeRangeDays != 7 {
		t.Fatalf("quoted timeRangeDays must decode to 7, got %d", reader.lastFilters.TimeRangeDays)
	}
	if resp.Header.Get("X-Session-ID") == "" {
		t.Fatalf("search must issue a session id")
	}
}

func TestSearchHandler_SessionRoundTrip(t *testing.T) {
	reader := &stubReader{}
	app := newSearchTestApp(reader)

	body := []byte(`{"jobTitle":"Data Analyst","location":"Pakistan","timeRangeDays":7}`)
	req := httptest.NewRequest("POST", "/api/v1/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	sid := resp.Header.Get("X-Session-ID")
	if sid == "" {
		t.Fatalf("search must issue a session id")
	}

	pageReq := httptest.NewRequest("POST", "/api/v1/search/page", bytes.NewReader([]byte(`{"page":2}`)))
	pageReq.Header.Set("Content-Type", "application/json")
	pageReq.Header.Set("X-Session-ID", sid)

	pageResp, err := app.Test(pageReq)
	if err != nil {
		t.Fatalf("change page: %v", err)
	}
	if pageResp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with a live session, got %d", pageResp.StatusCode)
	}
	if reader.lastPage != 2 {
		t.Fatalf("page change must reach the reader, got page %d", reader.lastPage)
	}
}

func TestSearchHandler_PageWithoutSessionFails(t *testing.T) {
	app := newSearchTestApp(&stubReader{})

	req := httptest.NewRequest("POST", "/api/v1/search/page", bytes.NewReader([]byte(`{"page":2}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 without a prior search, got %d", resp.StatusCode)
	}
}

func TestSearchHandler_MalformedBody(t *testing.T) {
	app := newSearchTestApp(&stubReader{})

	req := httptest.NewRequest("POST", "/api/v1/search", bytes.NewReader([]byte(`{"jobTitle":`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for malformed JSON, got %d", resp.StatusCode)
	}
}
