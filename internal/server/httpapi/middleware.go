package httpapi

import (
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/gamestore/internal/common"
	"github.com/dmitrijs2005/gamestore/internal/server/models"
	"github.com/gofiber/fiber/v2"
)

const (
	localsUser         = "user"
	localsAdminSession = "admin_session"
)

// extractBearerToken returns the token of an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func extractBearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func (s *HTTPServer) requireUser(c *fiber.Ctx) error {
	token, ok := extractBearerToken(c.Get(common.AuthorizationHeader))
	if !ok {
		return common.ErrorUnauthorized
	}

	user, err := s.accounts.AuthorizeUser(c.UserContext(), token)
	if err != nil {
		return err
	}

	c.Locals(localsUser, user)
	return c.Next()
}

// optionalUser attaches the caller when a valid user token is present.
// Missing or rejected credentials leave the request anonymous.
func (s *HTTPServer) optionalUser(c *fiber.Ctx) error {
	token, ok := extractBearerToken(c.Get(common.AuthorizationHeader))
	if !ok {
		return c.Next()
	}

	user, err := s.accounts.AuthorizeUser(c.UserContext(), token)
	switch {
	case err == nil:
		c.Locals(localsUser, user)
	case !errors.Is(err, common.ErrorUnauthorized):
		return err
	}

	return c.Next()
}

func (s *HTTPServer) requireAdmin(c *fiber.Ctx) error {
	token, ok := extractBearerToken(c.Get(common.AuthorizationHeader))
	if !ok {
		return common.ErrorUnauthorized
	}

	session, err := s.admins.AuthorizeAdmin(c.UserContext(), token)
	if err != nil {
		return err
	}

	c.Locals(localsAdminSession, session)
	return c.Next()
}

func currentUser(c *fiber.Ctx) *models.User {
	u, _ := c.Locals(localsUser).(*models.User)
	return u
}

func currentAdminSession(c *fiber.Ctx) *models.AdminSession {
	sess, _ := c.Locals(localsAdminSession).(*models.AdminSession)
	return sess
}

// requestLogger writes one line per request. Errors are rendered here so the
// logged status is the one the client receives.
func (s *HTTPServer) requestLogger(c *fiber.Ctx) error {
	start := time.Now()

	if err := c.Next(); err != nil {
		if herr := c.App().ErrorHandler(c, err); herr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	s.logger.Info(c.UserContext(), "request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"latency", time.Since(start).String(),
	)
	return nil
}
