package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gamestore/internal/common"
	"github.com/dmitrijs2005/gamestore/internal/dbx"
	"github.com/dmitrijs2005/gamestore/internal/server/models"
)

const bannerColumns = `id, title, title_ar, image_url, link, is_active, created_at, updated_at`

type PostgresBannerRepository struct {
	db dbx.DBTX
}

func NewPostgresBannerRepository(db dbx.DBTX) *PostgresBannerRepository {
	return &PostgresBannerRepository{db: db}
}

func scanBanner(rows *sql.Rows) (models.Banner, error) {
	var b models.Banner
	err := rows.Scan(&b.ID, &b.Title, &b.TitleAr, &b.ImageURL, &b.Link, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return b, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}

func (r *PostgresBannerRepository) ListActive(ctx context.Context) ([]models.Banner, error) {
	return queryList(ctx, r.db, scanBanner,
		`SELECT `+bannerColumns+` FROM banners WHERE is_active ORDER BY created_at`)
}

func (r *PostgresBannerRepository) ListAll(ctx context.Context) ([]models.Banner, error) {
	return queryList(ctx, r.db, scanBanner,
		`SELECT `+bannerColumns+` FROM banners ORDER BY created_at`)
}

func (r *PostgresBannerRepository) Create(ctx context.Context, b *models.Banner) (*models.Banner, error) {
	ensureID(&b.ID)

	query :=
		`INSERT INTO banners (id, title, title_ar, image_url, link, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query, b.ID, b.Title, b.TitleAr, b.ImageURL, b.Link, b.IsActive, b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}

func (r *PostgresBannerRepository) Update(ctx context.Context, b *models.Banner) error {
	if !validID(b.ID) {
		return common.ErrorNotFound
	}

	query :=
		`UPDATE banners SET title = $2, title_ar = $3, image_url = $4, link = $5, is_active = $6, updated_at = $7
		 WHERE id = $1`

	return expectOne(r.db.ExecContext(ctx, query, b.ID, b.Title, b.TitleAr, b.ImageURL, b.Link, b.IsActive, b.UpdatedAt))
}

func (r *PostgresBannerRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "banners", id)
}
