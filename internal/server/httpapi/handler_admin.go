package httpapi

import (
	"errors"

	"github.com/dmitrijs2005/gamestore/internal/common"
	"github.com/gofiber/fiber/v2"
)

func (s *HTTPServer) adminLogin(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	token, err := s.admins.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return err
	}

	s.logger.Info(c.UserContext(), "Admin logged in")
	return c.JSON(fiber.Map{"token": token, "message": "Login successful"})
}

func (s *HTTPServer) adminLogout(c *fiber.Ctx) error {
	if err := s.admins.Logout(c.UserContext(), currentAdminSession(c).ID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Logged out"})
}

func (s *HTTPServer) adminListOrders(c *fiber.Ctx) error {
	orders, err := s.orders.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"orders": orders})
}

func (s *HTTPServer) adminSetUserStatus(c *fiber.Ctx) error {
	var req userStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	userID := c.Params("id")
	if err := s.accounts.SetUserActive(c.UserContext(), userID, *req.IsActive); err != nil {
		return notFound(err, "User not found")
	}

	s.logger.Info(c.UserContext(), "User status changed", "user_id", userID, "is_active", *req.IsActive)
	return done(c)
}

func (s *HTTPServer) adminPresignUpload(c *fiber.Ctx) error {
	var req uploadRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ticket, err := s.uploads.PresignImageUpload(c.UserContext(), req.ContentType)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"key":        ticket.Key,
		"upload_url": ticket.UploadURL,
		"image_url":  ticket.ImageURL,
	})
}
