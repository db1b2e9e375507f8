package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gamestore/internal/dbx"
	"github.com/dmitrijs2005/gamestore/internal/server/repositories/admins"
	"github.com/dmitrijs2005/gamestore/internal/server/repositories/catalog"
	"github.com/dmitrijs2005/gamestore/internal/server/repositories/orders"
	"github.com/dmitrijs2005/gamestore/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code
// path can run against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Admins(db dbx.DBTX) admins.Repository
	Orders(db dbx.DBTX) orders.Repository
	Games(db dbx.DBTX) catalog.GameRepository
	News(db dbx.DBTX) catalog.NewsRepository
	Banners(db dbx.DBTX) catalog.BannerRepository
}
