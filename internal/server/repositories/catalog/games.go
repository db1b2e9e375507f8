package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gamestore/internal/common"
	"github.com/dmitrijs2005/gamestore/internal/dbx"
	"github.com/dmitrijs2005/gamestore/internal/server/models"
)

const gameColumns = `id, name, name_ar, description, description_ar, image_url, prices, is_active, created_at, updated_at`

type PostgresGameRepository struct {
	db dbx.DBTX
}

func NewPostgresGameRepository(db dbx.DBTX) *PostgresGameRepository {
	return &PostgresGameRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (models.Game, error) {
	var (
		g      models.Game
		prices []byte
	)
	err := row.Scan(&g.ID, &g.Name, &g.NameAr, &g.Description, &g.DescriptionAr, &g.ImageURL,
		&prices, &g.IsActive, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return g, err
	}
	if err := json.Unmarshal(prices, &g.Prices); err != nil {
		return g, fmt.Errorf("decode prices: %w", err)
	}
	if g.Prices == nil {
		g.Prices = []models.PricePackage{}
	}
	return g, nil
}

func encodePrices(p []models.PricePackage) ([]byte, error) {
	if p == nil {
		p = []models.PricePackage{}
	}
	return json.Marshal(p)
}

func scanGameRows(rows *sql.Rows) (models.Game, error) {
	g, err := scanGame(rows)
	if err != nil {
		return g, fmt.Errorf("db error: %w", err)
	}
	return g, nil
}

func (r *PostgresGameRepository) ListActive(ctx context.Context) ([]models.Game, error) {
	return queryList(ctx, r.db, scanGameRows,
		`SELECT `+gameColumns+` FROM games WHERE is_active ORDER BY created_at`)
}

func (r *PostgresGameRepository) ListAll(ctx context.Context) ([]models.Game, error) {
	return queryList(ctx, r.db, scanGameRows,
		`SELECT `+gameColumns+` FROM games ORDER BY created_at`)
}

func (r *PostgresGameRepository) FindActiveByID(ctx context.Context, id string) (*models.Game, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}

	g, err := scanGame(r.db.QueryRowContext(ctx,
		`SELECT `+gameColumns+` FROM games WHERE id = $1 AND is_active`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &g, nil
}

func (r *PostgresGameRepository) Create(ctx context.Context, g *models.Game) (*models.Game, error) {
	ensureID(&g.ID)

	prices, err := encodePrices(g.Prices)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO games (id, name, name_ar, description, description_ar, image_url, prices, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = r.db.ExecContext(ctx, query, g.ID, g.Name, g.NameAr, g.Description, g.DescriptionAr,
		g.ImageURL, prices, g.IsActive, g.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return g, nil
}

func (r *PostgresGameRepository) Update(ctx context.Context, g *models.Game) error {
	if !validID(g.ID) {
		return common.ErrorNotFound
	}

	prices, err := encodePrices(g.Prices)
	if err != nil {
		return err
	}

	query :=
		`UPDATE games SET name = $2, name_ar = $3, description = $4, description_ar = $5,
		 image_url = $6, prices = $7, is_active = $8, updated_at = $9
		 WHERE id = $1`

	return expectOne(r.db.ExecContext(ctx, query, g.ID, g.Name, g.NameAr, g.Description, g.DescriptionAr,
		g.ImageURL, prices, g.IsActive, g.UpdatedAt))
}

func (r *PostgresGameRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "games", id)
}
