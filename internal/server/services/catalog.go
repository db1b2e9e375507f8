package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/gamestore/internal/server/models"
	"github.com/dmitrijs2005/gamestore/internal/server/repositories/repomanager"
)

// CatalogService serves games, news and banners. Public reads see active
// records only; the admin variants see everything.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{db: db, repomanager: m, now: time.Now}
}

func (s *CatalogService) ListGames(ctx context.Context) ([]models.Game, error) {
	games, err := s.repomanager.Games(s.db).ListActive(ctx)
	if err != nil {
		return nil, internalError("list games", err)
	}
	return games, nil
}

func (s *CatalogService) GetGame(ctx context.Context, id string) (*models.Game, error) {
	game, err := s.repomanager.Games(s.db).FindActiveByID(ctx, id)
	if err != nil {
		return nil, passThrough("find game", err)
	}
	return game, nil
}

func (s *CatalogService) ListAllGames(ctx context.Context) ([]models.Game, error) {
	games, err := s.repomanager.Games(s.db).ListAll(ctx)
	if err != nil {
		return nil, internalError("list all games", err)
	}
	return games, nil
}

func (s *CatalogService) CreateGame(ctx context.Context, g *models.Game) (string, error) {
	g.ID = ""
	g.CreatedAt = s.now()
	g.UpdatedAt = nil

	created, err := s.repomanager.Games(s.db).Create(ctx, g)
	if err != nil {
		return "", internalError("create game", err)
	}
	return created.ID, nil
}

func (s *CatalogService) UpdateGame(ctx context.Context, id string, g *models.Game) error {
	now := s.now()
	g.ID = id
	g.UpdatedAt = &now

	if err := s.repomanager.Games(s.db).Update(ctx, g); err != nil {
		return passThrough("update game", err)
	}
	return nil
}

func (s *CatalogService) DeleteGame(ctx context.Context, id string) error {
	if err := s.repomanager.Games(s.db).Delete(ctx, id); err != nil {
		return passThrough("delete game", err)
	}
	return nil
}

func (s *CatalogService) ListNews(ctx context.Context) ([]models.NewsItem, error) {
	news, err := s.repomanager.News(s.db).ListActive(ctx)
	if err != nil {
		return nil, internalError("list news", err)
	}
	return news, nil
}

func (s *CatalogService) ListAllNews(ctx context.Context) ([]models.NewsItem, error) {
	news, err := s.repomanager.News(s.db).ListAll(ctx)
	if err != nil {
		return nil, internalError("list all news", err)
	}
	return news, nil
}

func (s *CatalogService) CreateNews(ctx context.Context, n *models.NewsItem) (string, error) {
	n.ID = ""
	n.CreatedAt = s.now()
	n.UpdatedAt = nil

	created, err := s.repomanager.News(s.db).Create(ctx, n)
	if err != nil {
		return "", internalError("create news", err)
	}
	return created.ID, nil
}

func (s *CatalogService) UpdateNews(ctx context.Context, id string, n *models.NewsItem) error {
	now := s.now()
	n.ID = id
	n.UpdatedAt = &now

	if err := s.repomanager.News(s.db).Update(ctx, n); err != nil {
		return passThrough("update news", err)
	}
	return nil
}

func (s *CatalogService) DeleteNews(ctx context.Context, id string) error {
	if err := s.repomanager.News(s.db).Delete(ctx, id); err != nil {
		return passThrough("delete news", err)
	}
	return nil
}

func (s *CatalogService) ListBanners(ctx context.Context) ([]models.Banner, error) {
	banners, err := s.repomanager.Banners(s.db).ListActive(ctx)
	if err != nil {
		return nil, internalError("list banners", err)
	}
	return banners, nil
}

func (s *CatalogService) ListAllBanners(ctx context.Context) ([]models.Banner, error) {
	banners, err := s.repomanager.Banners(s.db).ListAll(ctx)
	if err != nil {
		return nil, internalError("list all banners", err)
	}
	return banners, nil
}

func (s *CatalogService) CreateBanner(ctx context.Context, b *models.Banner) (string, error) {
	b.ID = ""
	b.CreatedAt = s.now()
	b.UpdatedAt = nil

	created, err := s.repomanager.Banners(s.db).Create(ctx, b)
	if err != nil {
		return "", internalError("create banner", err)
	}
	return created.ID, nil
}

func (s *CatalogService) UpdateBanner(ctx context.Context, id string, b *models.Banner) error {
	now := s.now()
	b.ID = id
	b.UpdatedAt = &now

	if err := s.repomanager.Banners(s.db).Update(ctx, b); err != nil {
		return passThrough("update banner", err)
	}
	return nil
}

func (s *CatalogService) DeleteBanner(ctx context.Context, id string) error {
	if err := s.repomanager.Banners(s.db).Delete(ctx, id); err != nil {
		return passThrough("delete banner", err)
	}
	return nil
}
