package handler

import (
	"fmt"

	"jobradar/internal/delivery/http/dto"
	"jobradar/internal/delivery/http/middleware"
	"jobradar/internal/domain/job"
	"jobradar/internal/pkg/response"
	"jobradar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type IngestHandler struct {
	uc usecase.IngestUsecase
}

func NewIngestHandler(uc usecase.IngestUsecase) *IngestHandler {
	return &IngestHandler{uc: uc}
}

func (h *IngestHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/ingest", h.HandleIngest)
}

func (h *IngestHandler) HandleIngest(c fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	filters := job.Filters{
		JobTitle:      req.JobTitle,
		Location:      req.Location,
		TimeRangeDays: int(req.TimeRangeDays),
	}

	summary, err := h.uc.Ingest(c.Context(), filters)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.IngestResponse{
		Success:    true,
		Inserted:   summary.Inserted,
		Duplicates: summary.Duplicates,
		Total:      summary.Total,
		Message:    fmt.Sprintf("Found %d new %s jobs in %s", summary.Inserted, req.JobTitle, req.Location),
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}
