package handler

import (
	"jobradar/internal/delivery/http/dto"
	"jobradar/internal/delivery/http/middleware"
	"jobradar/internal/domain/job"
	"jobradar/internal/pkg/response"
	"jobradar/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const sessionHeader = "X-Session-ID"

// SearchHandler fronts the per-client search sessions. The session id is
// round-tripped in the X-Session-ID header; page and sort changes require
// an id from a prior search.
type SearchHandler struct {
	sessions *usecase.SessionRegistry
}

func NewSearchHandler(sessions *usecase.SessionRegistry) *SearchHandler {
	return &SearchHandler{sessions: sessions}
}

func (h *SearchHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/search", h.HandleSearch)
	r.Post("/search/page", h.HandleChangePage)
	r.Post("/search/sort", h.HandleChangeSort)
}

func (h *SearchHandler) HandleSearch(c fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	sid, _ := uuid.Parse(c.Get(sessionHeader))
	id, sess := h.sessions.GetOrCreate(sid)
	c.Set(sessionHeader, id.String())

	page, err := sess.Search(c.Context(), job.Filters{
		JobTitle:      req.JobTitle,
		Location:      req.Location,
		TimeRangeDays: int(req.TimeRangeDays),
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "success", dto.FromResultPage(page))
}

func (h *SearchHandler) HandleChangePage(c fiber.Ctx) error {
	var req dto.PageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	sess, err := h.activeSession(c)
	if err != nil {
		return err
	}

	page, err := sess.ChangePage(c.Context(), req.Page)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.FromResultPage(page))
}

func (h *SearchHandler) HandleChangeSort(c fiber.Ctx) error {
	var req dto.SortRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	sess, err := h.activeSession(c)
	if err != nil {
		return err
	}

	page, err := sess.ChangeSort(c.Context(), job.ParseSortKey(req.SortKey))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.FromResultPage(page))
}

func (h *SearchHandler) activeSession(c fiber.Ctx) (*usecase.SearchSession, error) {
	sid, err := uuid.Parse(c.Get(sessionHeader))
	if err != nil || sid == uuid.Nil {
		return nil, mapUsecaseError(usecase.ErrNoActiveSearch)
	}
	sess, ok := h.sessions.Get(sid)
	if !ok {
		return nil, mapUsecaseError(usecase.ErrNoActiveSearch)
	}
	c.Set(sessionHeader, sid.String())
	return sess, nil
}
