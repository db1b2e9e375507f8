package httpapi

import (
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func (s *HTTPServer) routes() {
	s.app.Use(s.requestLogger)
	s.app.Use(recover.New())
	s.app.Use(cors.New())

	s.app.Get("/", s.root)

	api := s.app.Group("/api")

	api.Get("/games", s.listGames)
	api.Get("/games/:id", s.getGame)
	api.Get("/news", s.listNews)
	api.Get("/banners", s.listBanners)
	api.Post("/orders", s.optionalUser, s.createOrder)

	users := api.Group("/users")
	users.Post("/register", s.registerUser)
	users.Post("/login", s.loginUser)
	users.Get("/me", s.requireUser, s.getMe)
	users.Put("/me", s.requireUser, s.updateMe)
	users.Get("/orders", s.requireUser, s.myOrders)

	// login must be registered before the guarded group
	api.Post("/admin/login", s.adminLogin)

	admin := api.Group("/admin", s.requireAdmin)
	admin.Post("/logout", s.adminLogout)

	admin.Get("/games", s.adminListGames)
	admin.Post("/games", s.adminCreateGame)
	admin.Put("/games/:id", s.adminUpdateGame)
	admin.Delete("/games/:id", s.adminDeleteGame)

	admin.Get("/news", s.adminListNews)
	admin.Post("/news", s.adminCreateNews)
	admin.Put("/news/:id", s.adminUpdateNews)
	admin.Delete("/news/:id", s.adminDeleteNews)

	admin.Get("/banners", s.adminListBanners)
	admin.Post("/banners", s.adminCreateBanner)
	admin.Put("/banners/:id", s.adminUpdateBanner)
	admin.Delete("/banners/:id", s.adminDeleteBanner)

	admin.Get("/orders", s.adminListOrders)
	admin.Put("/users/:id/status", s.adminSetUserStatus)
	admin.Post("/uploads", s.adminPresignUpload)
}
