package handler

import (
	"errors"

	"jobradar/internal/delivery/http/middleware"
	"jobradar/internal/pkg/response"
	"jobradar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func mapUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrNoActiveSearch):
		return middleware.NewAppError(fiber.StatusBadRequest, "No active search for this session", nil, err)
	case errors.Is(err, usecase.ErrNoListings):
		return middleware.NewAppError(fiber.StatusNotFound, "No listings match the export filters", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
