package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gamestore/internal/common"
	"github.com/dmitrijs2005/gamestore/internal/dbx"
	"github.com/dmitrijs2005/gamestore/internal/server/models"
)

const newsColumns = `id, title, title_ar, content, content_ar, is_active, created_at, updated_at`

type PostgresNewsRepository struct {
	db dbx.DBTX
}

func NewPostgresNewsRepository(db dbx.DBTX) *PostgresNewsRepository {
	return &PostgresNewsRepository{db: db}
}

func scanNews(rows *sql.Rows) (models.NewsItem, error) {
	var n models.NewsItem
	err := rows.Scan(&n.ID, &n.Title, &n.TitleAr, &n.Content, &n.ContentAr, &n.IsActive, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return n, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresNewsRepository) ListActive(ctx context.Context) ([]models.NewsItem, error) {
	return queryList(ctx, r.db, scanNews,
		`SELECT `+newsColumns+` FROM news WHERE is_active ORDER BY created_at DESC`)
}

func (r *PostgresNewsRepository) ListAll(ctx context.Context) ([]models.NewsItem, error) {
	return queryList(ctx, r.db, scanNews,
		`SELECT `+newsColumns+` FROM news ORDER BY created_at DESC`)
}

func (r *PostgresNewsRepository) Create(ctx context.Context, n *models.NewsItem) (*models.NewsItem, error) {
	ensureID(&n.ID)

	query :=
		`INSERT INTO news (id, title, title_ar, content, content_ar, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query, n.ID, n.Title, n.TitleAr, n.Content, n.ContentAr, n.IsActive, n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresNewsRepository) Update(ctx context.Context, n *models.NewsItem) error {
	if !validID(n.ID) {
		return common.ErrorNotFound
	}

	query :=
		`UPDATE news SET title = $2, title_ar = $3, content = $4, content_ar = $5, is_active = $6, updated_at = $7
		 WHERE id = $1`

	return expectOne(r.db.ExecContext(ctx, query, n.ID, n.Title, n.TitleAr, n.Content, n.ContentAr, n.IsActive, n.UpdatedAt))
}

func (r *PostgresNewsRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "news", id)
}
