package httpapi

import (
	"errors"

	"github.com/dmitrijs2005/gamestore/internal/common"
	"github.com/gofiber/fiber/v2"
)

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Detail string `json:"detail"`
}

func classify(err error) (int, string) {
	var fe *fiber.Error

	switch {
	case errors.As(err, &fe):
		return fe.Code, fe.Message
	case errors.Is(err, common.ErrorUnauthorized):
		return fiber.StatusUnauthorized, "Could not validate credentials"
	case errors.Is(err, common.ErrUsernameTaken):
		return fiber.StatusBadRequest, "Username already registered"
	case errors.Is(err, common.ErrEmailTaken):
		return fiber.StatusBadRequest, "Email already registered"
	case errors.Is(err, common.ErrEmailInUse):
		return fiber.StatusBadRequest, "Email already in use"
	case errors.Is(err, common.ErrorConflict):
		return fiber.StatusBadRequest, "Conflict"
	case errors.Is(err, common.ErrorNotFound):
		return fiber.StatusNotFound, "Not found"
	case errors.Is(err, common.ErrorValidation):
		return fiber.StatusUnprocessableEntity, err.Error()
	}

	return fiber.StatusInternalServerError, "Internal server error"
}

func (s *HTTPServer) handleError(c *fiber.Ctx, err error) error {
	status, detail := classify(err)

	switch {
	case status >= fiber.StatusInternalServerError:
		s.logger.Error(c.UserContext(), "request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
	case status == fiber.StatusUnauthorized:
		s.logger.Warn(c.UserContext(), "authentication failed", "method", c.Method(), "path", c.Path())
	}

	return c.Status(status).JSON(errorResponse{Detail: detail})
}

// notFound swaps a generic not-found for one naming the resource.
func notFound(err error, detail string) error {
	if errors.Is(err, common.ErrorNotFound) {
		return fiber.NewError(fiber.StatusNotFound, detail)
	}
	return err
}
