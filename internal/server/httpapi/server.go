// Package httpapi is the HTTP boundary of the storefront: routing, bearer
// credential extraction, the user and admin guards, and translation of
// service errors into status codes.
package httpapi

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gamestore/internal/logging"
	"github.com/dmitrijs2005/gamestore/internal/server/models"
	"github.com/dmitrijs2005/gamestore/internal/server/services"
	"github.com/gofiber/fiber/v2"
)

const shutdownTimeout = 5 * time.Second

type AccountService interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.Session, error)
	Login(ctx context.Context, username, password string) (*services.Session, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, in services.ProfileInput) (*models.User, error)
	AuthorizeUser(ctx context.Context, token string) (*models.User, error)
	SetUserActive(ctx context.Context, userID string, active bool) error
}

type AdminService interface {
	Login(ctx context.Context, username, password string) (string, error)
	AuthorizeAdmin(ctx context.Context, token string) (*models.AdminSession, error)
	Logout(ctx context.Context, sessionID string) error
}

type CatalogService interface {
	ListGames(ctx context.Context) ([]models.Game, error)
	GetGame(ctx context.Context, id string) (*models.Game, error)
	ListAllGames(ctx context.Context) ([]models.Game, error)
	CreateGame(ctx context.Context, g *models.Game) (string, error)
	UpdateGame(ctx context.Context, id string, g *models.Game) error
	DeleteGame(ctx context.Context, id string) error

	ListNews(ctx context.Context) ([]models.NewsItem, error)
	ListAllNews(ctx context.Context) ([]models.NewsItem, error)
	CreateNews(ctx context.Context, n *models.NewsItem) (string, error)
	UpdateNews(ctx context.Context, id string, n *models.NewsItem) error
	DeleteNews(ctx context.Context, id string) error

	ListBanners(ctx context.Context) ([]models.Banner, error)
	ListAllBanners(ctx context.Context) ([]models.Banner, error)
	CreateBanner(ctx context.Context, b *models.Banner) (string, error)
	UpdateBanner(ctx context.Context, id string, b *models.Banner) error
	DeleteBanner(ctx context.Context, id string) error
}

type OrderService interface {
	Place(ctx context.Context, in services.OrderInput, userID *string) (*services.PlacedOrder, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	ListForUser(ctx context.Context, userID string) ([]models.Order, error)
}

type UploadService interface {
	PresignImageUpload(ctx context.Context, contentType string) (*services.UploadTicket, error)
}

// Services groups the business services the HTTP layer dispatches to.
type Services struct {
	Accounts AccountService
	Admins   AdminService
	Catalog  CatalogService
	Orders   OrderService
	Uploads  UploadService
}

type HTTPServer struct {
	address  string
	logger   logging.Logger
	accounts AccountService
	admins   AdminService
	catalog  CatalogService
	orders   OrderService
	uploads  UploadService
	app      *fiber.App
}

func NewHTTPServer(a string, l logging.Logger, svc Services) *HTTPServer {
	s := &HTTPServer{
		address:  a,
		logger:   l.With("module", "http_server"),
		accounts: svc.Accounts,
		admins:   svc.Admins,
		catalog:  svc.Catalog,
		orders:   svc.Orders,
		uploads:  svc.Uploads,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "gaming-store",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	s.routes()

	return s
}

// Run serves until ctx is cancelled, then shuts the listener down. It returns
// only after in-flight requests have drained or shutdownTimeout elapsed.
func (s *HTTPServer) Run(ctx context.Context) error {

	stopped := make(chan struct{})

	go func() {
		defer close(stopped)

		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.app.Listen(s.address); err != nil {
		return err
	}

	<-stopped
	return nil
}
