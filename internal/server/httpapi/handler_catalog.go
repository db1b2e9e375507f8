package httpapi

import (
	"github.com/gofiber/fiber/v2"
)

func (s *HTTPServer) root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Gaming Store 2025 API"})
}

func (s *HTTPServer) listGames(c *fiber.Ctx) error {
	games, err := s.catalog.ListGames(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"games": games})
}

func (s *HTTPServer) getGame(c *fiber.Ctx) error {
	game, err := s.catalog.GetGame(c.UserContext(), c.Params("id"))
	if err != nil {
		return notFound(err, "Game not found")
	}
	return c.JSON(game)
}

func (s *HTTPServer) listNews(c *fiber.Ctx) error {
	news, err := s.catalog.ListNews(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"news": news})
}

func (s *HTTPServer) listBanners(c *fiber.Ctx) error {
	banners, err := s.catalog.ListBanners(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"banners": banners})
}

func created(c *fiber.Ctx, id string) error {
	return c.JSON(fiber.Map{"success": true, "id": id})
}

func done(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true})
}

func (s *HTTPServer) adminListGames(c *fiber.Ctx) error {
	games, err := s.catalog.ListAllGames(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"games": games})
}

func (s *HTTPServer) adminCreateGame(c *fiber.Ctx) error {
	var req gameRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := s.catalog.CreateGame(c.UserContext(), req.model())
	if err != nil {
		return err
	}
	return created(c, id)
}

func (s *HTTPServer) adminUpdateGame(c *fiber.Ctx) error {
	var req gameRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := s.catalog.UpdateGame(c.UserContext(), c.Params("id"), req.model()); err != nil {
		return notFound(err, "Game not found")
	}
	return done(c)
}

func (s *HTTPServer) adminDeleteGame(c *fiber.Ctx) error {
	if err := s.catalog.DeleteGame(c.UserContext(), c.Params("id")); err != nil {
		return notFound(err, "Game not found")
	}
	return done(c)
}

func (s *HTTPServer) adminListNews(c *fiber.Ctx) error {
	news, err := s.catalog.ListAllNews(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"news": news})
}

func (s *HTTPServer) adminCreateNews(c *fiber.Ctx) error {
	var req newsRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := s.catalog.CreateNews(c.UserContext(), req.model())
	if err != nil {
		return err
	}
	return created(c, id)
}

func (s *HTTPServer) adminUpdateNews(c *fiber.Ctx) error {
	var req newsRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := s.catalog.UpdateNews(c.UserContext(), c.Params("id"), req.model()); err != nil {
		return notFound(err, "News not found")
	}
	return done(c)
}

func (s *HTTPServer) adminDeleteNews(c *fiber.Ctx) error {
	if err := s.catalog.DeleteNews(c.UserContext(), c.Params("id")); err != nil {
		return notFound(err, "News not found")
	}
	return done(c)
}

func (s *HTTPServer) adminListBanners(c *fiber.Ctx) error {
	banners, err := s.catalog.ListAllBanners(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"banners": banners})
}

func (s *HTTPServer) adminCreateBanner(c *fiber.Ctx) error {
	var req bannerRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := s.catalog.CreateBanner(c.UserContext(), req.model())
	if err != nil {
		return err
	}
	return created(c, id)
}

func (s *HTTPServer) adminUpdateBanner(c *fiber.Ctx) error {
	var req bannerRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := s.catalog.UpdateBanner(c.UserContext(), c.Params("id"), req.model()); err != nil {
		return notFound(err, "Banner not found")
	}
	return done(c)
}

func (s *HTTPServer) adminDeleteBanner(c *fiber.Ctx) error {
	if err := s.catalog.DeleteBanner(c.UserContext(), c.Params("id")); err != nil {
		return notFound(err, "Banner not found")
	}
	return done(c)
}
