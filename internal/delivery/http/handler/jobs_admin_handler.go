package handler

import (
	"fmt"
	"strconv"

	"jobradar/internal/delivery/http/dto"
	"jobradar/internal/delivery/http/middleware"
	"jobradar/internal/domain/job"
	"jobradar/internal/pkg/response"
	"jobradar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// JobsAdminHandler exposes the export and bulk-clear collaborators that read
// and wipe the stored listing set directly.
type JobsAdminHandler struct {
	export usecase.ExportUsecase
	admin  usecase.AdminUsecase
}

func NewJobsAdminHandler(export usecase.ExportUsecase, admin usecase.AdminUsecase) *JobsAdminHandler {
	return &JobsAdminHandler{export: export, admin: admin}
}

func (h *JobsAdminHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/jobs/export", h.HandleExport)
	r.Delete("/jobs", h.HandleClear)
}

func (h *JobsAdminHandler) HandleExport(c fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("timeRangeDays"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	filters := job.Filters{
		JobTitle:      c.Query("jobTitle"),
		Location:      c.Query("location"),
		TimeRangeDays: days,
	}
	sort := job.ParseSortKey(c.Query("sortKey"))

	data, filename, err := h.export.ExportCSV(c.Context(), filters, sort)
	if err != nil {
		return mapUsecaseError(err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

func (h *JobsAdminHandler) HandleClear(c fiber.Ctx) error {
	deleted, err := h.admin.ClearAll(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.ClearResponse{
		Success: true,
		Deleted: deleted,
		Message: fmt.Sprintf("Deleted %d listings", deleted),
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}
