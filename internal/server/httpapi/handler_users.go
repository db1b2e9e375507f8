package httpapi

import (
	"errors"

	"github.com/dmitrijs2005/gamestore/internal/common"
	"github.com/dmitrijs2005/gamestore/internal/server/services"
	"github.com/gofiber/fiber/v2"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
}

func newTokenResponse(sess *services.Session) tokenResponse {
	return tokenResponse{
		AccessToken: sess.Token,
		TokenType:   "bearer",
		UserID:      sess.User.ID,
		Username:    sess.User.Username,
	}
}

func (s *HTTPServer) registerUser(c *fiber.Ctx) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	sess, err := s.accounts.Register(c.UserContext(), req.input())
	if err != nil {
		return err
	}

	s.logger.Info(c.UserContext(), "Registered", "username", sess.User.Username, "user_id", sess.User.ID)
	return c.JSON(newTokenResponse(sess))
}

func (s *HTTPServer) loginUser(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	sess, err := s.accounts.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return fiber.NewError(fiber.StatusUnauthorized, "Incorrect username or password")
		}
		return err
	}

	return c.JSON(newTokenResponse(sess))
}

func (s *HTTPServer) getMe(c *fiber.Ctx) error {
	user, err := s.accounts.GetProfile(c.UserContext(), currentUser(c).ID)
	if err != nil {
		return notFound(err, "User not found")
	}
	return c.JSON(user)
}

func (s *HTTPServer) updateMe(c *fiber.Ctx) error {
	var req profileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	_, err := s.accounts.UpdateProfile(c.UserContext(), currentUser(c).ID, services.ProfileInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		return notFound(err, "User not found")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Profile updated successfully"})
}

func (s *HTTPServer) myOrders(c *fiber.Ctx) error {
	orders, err := s.orders.ListForUser(c.UserContext(), currentUser(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"orders": orders})
}

func (s *HTTPServer) createOrder(c *fiber.Ctx) error {
	var req orderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	var owner *string
	if u := currentUser(c); u != nil {
		owner = &u.ID
	}

	placed, err := s.orders.Place(c.UserContext(), req.input(), owner)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"order_id":     placed.Order.ID,
		"whatsapp_url": placed.WhatsAppURL,
	})
}
