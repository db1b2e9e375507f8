// Package orders stores top-up orders.
package orders

import (
	"context"

	"github.com/dmitrijs2005/gamestore/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	// ListAll returns every order, newest first.
	ListAll(ctx context.Context) ([]models.Order, error)
	// ListByUser returns the orders placed by userID, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
}
