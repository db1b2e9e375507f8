// Package users is the end-user half of the Credential Store.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gamestore/internal/server/models"
)

// Repository persists end-user accounts. Lookups are case-sensitive exact
// matches. Create and UpdateProfile report unique-key clashes with the
// common conflict sentinels.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id, fullName, email string, phone *string, updatedAt time.Time) (*models.User, error)
	SetActive(ctx context.Context, id string, active bool, updatedAt time.Time) error
}
