// Package admins is the administrator half of the Credential Store plus the
// admin session table that backs revocable admin credentials.
package admins

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gamestore/internal/server/models"
)

type Repository interface {
	// Ensure inserts admin unless an account with its username exists.
	// created reports whether this call inserted the row.
	Ensure(ctx context.Context, admin *models.Admin) (created bool, err error)
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	FindByID(ctx context.Context, id string) (*models.Admin, error)

	CreateSession(ctx context.Context, session *models.AdminSession) error
	FindSession(ctx context.Context, id string) (*models.AdminSession, error)
	RevokeSession(ctx context.Context, id string, revokedAt time.Time) error
}
