// Package catalog stores the storefront's public content: games with their
// price packages, news items and banners.
package catalog

import (
	"context"

	"github.com/dmitrijs2005/gamestore/internal/server/models"
)

// Update and Delete report common.ErrorNotFound when no row has the id.
type GameRepository interface {
	ListActive(ctx context.Context) ([]models.Game, error)
	ListAll(ctx context.Context) ([]models.Game, error)
	FindActiveByID(ctx context.Context, id string) (*models.Game, error)
	Create(ctx context.Context, game *models.Game) (*models.Game, error)
	Update(ctx context.Context, game *models.Game) error
	Delete(ctx context.Context, id string) error
}

type NewsRepository interface {
	ListActive(ctx context.Context) ([]models.NewsItem, error)
	ListAll(ctx context.Context) ([]models.NewsItem, error)
	Create(ctx context.Context, item *models.NewsItem) (*models.NewsItem, error)
	Update(ctx context.Context, item *models.NewsItem) error
	Delete(ctx context.Context, id string) error
}

type BannerRepository interface {
	ListActive(ctx context.Context) ([]models.Banner, error)
	ListAll(ctx context.Context) ([]models.Banner, error)
	Create(ctx context.Context, banner *models.Banner) (*models.Banner, error)
	Update(ctx context.Context, banner *models.Banner) error
	Delete(ctx context.Context, id string) error
}
