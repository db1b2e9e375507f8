package services

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gamestore/internal/common"
	"github.com/dmitrijs2005/gamestore/internal/dbx"
	"github.com/dmitrijs2005/gamestore/internal/server/config"
	"github.com/dmitrijs2005/gamestore/internal/server/models"
	"github.com/dmitrijs2005/gamestore/internal/server/repositories/admins"
	"github.com/dmitrijs2005/gamestore/internal/server/repositories/catalog"
	"github.com/dmitrijs2005/gamestore/internal/server/repositories/orders"
	"github.com/dmitrijs2005/gamestore/internal/server/repositories/users"
	"github.com/google/uuid"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

var t0 = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                  "test-secret",
		UserTokenValidityDuration:  30 * 24 * time.Hour,
		AdminTokenValidityDuration: 12 * time.Hour,
		AdminPassword:              "xliunx",
		OrderWhatsAppNumber:        "967777826667",
		S3Region:                   "us-east-1",
		S3RootUser:                 "minioadmin",
		S3RootPassword:             "minioadmin",
		S3BaseEndpoint:             "http://127.0.0.1:9000/",
		S3Bucket:                   "catalog",
	}
}

// --- users ---

type memUsers struct {
	mu   sync.Mutex
	byID map[string]models.User

	// forced failures
	findErr   error
	createErr error
}

func newMemUsers() *memUsers { return &memUsers{byID: map[string]models.User{}} }

func (m *memUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	for _, other := range m.byID {
		if other.Username == u.Username {
			return nil, common.ErrUsernameTaken
		}
		if other.Email == u.Email {
			return nil, common.ErrEmailTaken
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	m.byID[u.ID] = *u
	return u, nil
}

func (m *memUsers) find(match func(models.User) bool) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, u := range m.byID {
		if match(u) {
			c := u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memUsers) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.find(func(u models.User) bool { return u.Username == username })
}

func (m *memUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.find(func(u models.User) bool { return u.Email == email })
}

func (m *memUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	return m.find(func(u models.User) bool { return u.ID == id })
}

func (m *memUsers) UpdateProfile(ctx context.Context, id, fullName, email string, phone *string, updatedAt time.Time) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	for _, other := range m.byID {
		if other.ID != id && other.Email == email {
			return nil, common.ErrEmailInUse
		}
	}
	u.FullName, u.Email, u.Phone, u.UpdatedAt = fullName, email, phone, updatedAt
	m.byID[id] = u
	return &u, nil
}

func (m *memUsers) SetActive(ctx context.Context, id string, active bool, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.IsActive, u.UpdatedAt = active, updatedAt
	m.byID[id] = u
	return nil
}

// --- admins ---

type memAdmins struct {
	mu       sync.Mutex
	admins   map[string]models.Admin
	sessions map[string]models.AdminSession

	sessionErr error
}

func newMemAdmins() *memAdmins {
	return &memAdmins{admins: map[string]models.Admin{}, sessions: map[string]models.AdminSession{}}
}

func (m *memAdmins) Ensure(ctx context.Context, a *models.Admin) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.admins {
		if existing.Username == a.Username {
			return false, nil
		}
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	m.admins[a.ID] = *a
	return true, nil
}

func (m *memAdmins) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if a.Username == username {
			c := a
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memAdmins) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.admins[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &a, nil
}

func (m *memAdmins) CreateSession(ctx context.Context, s *models.AdminSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessionErr != nil {
		return m.sessionErr
	}
	m.sessions[s.ID] = *s
	return nil
}

func (m *memAdmins) FindSession(ctx context.Context, id string) (*models.AdminSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &s, nil
}

func (m *memAdmins) RevokeSession(ctx context.Context, id string, revokedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok || s.RevokedAt != nil {
		return common.ErrorNotFound
	}
	s.RevokedAt = &revokedAt
	m.sessions[id] = s
	return nil
}

// --- orders ---

type memOrders struct {
	mu     sync.Mutex
	orders []models.Order
	err    error
}

func (m *memOrders) Create(ctx context.Context, o *models.Order) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.orders = append(m.orders, *o)
	return o, nil
}

func (m *memOrders) sorted(keep func(models.Order) bool) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Order, 0)
	for _, o := range m.orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memOrders) ListAll(ctx context.Context) ([]models.Order, error) {
	return m.sorted(func(models.Order) bool { return true })
}

func (m *memOrders) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return m.sorted(func(o models.Order) bool { return o.UserID != nil && *o.UserID == userID })
}

// --- catalog ---

type memGames struct {
	games map[string]models.Game
	err   error
}

func (m *memGames) list(activeOnly bool) ([]models.Game, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Game, 0)
	for _, g := range m.games {
		if !activeOnly || g.IsActive {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memGames) ListActive(ctx context.Context) ([]models.Game, error) { return m.list(true) }
func (m *memGames) ListAll(ctx context.Context) ([]models.Game, error)    { return m.list(false) }

func (m *memGames) FindActiveByID(ctx context.Context, id string) (*models.Game, error) {
	g, ok := m.games[id]
	if !ok || !g.IsActive {
		return nil, common.ErrorNotFound
	}
	return &g, nil
}

func (m *memGames) Create(ctx context.Context, g *models.Game) (*models.Game, error) {
	if m.err != nil {
		return nil, m.err
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	m.games[g.ID] = *g
	return g, nil
}

func (m *memGames) Update(ctx context.Context, g *models.Game) error {
	if _, ok := m.games[g.ID]; !ok {
		return common.ErrorNotFound
	}
	m.games[g.ID] = *g
	return nil
}

func (m *memGames) Delete(ctx context.Context, id string) error {
	if _, ok := m.games[id]; !ok {
		return common.ErrorNotFound
	}
	delete(m.games, id)
	return nil
}

type memNews struct{ items map[string]models.NewsItem }

func (m *memNews) ListActive(ctx context.Context) ([]models.NewsItem, error) {
	out := make([]models.NewsItem, 0)
	for _, n := range m.items {
		if n.IsActive {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memNews) ListAll(ctx context.Context) ([]models.NewsItem, error) {
	out := make([]models.NewsItem, 0)
	for _, n := range m.items {
		out = append(out, n)
	}
	return out, nil
}

func (m *memNews) Create(ctx context.Context, n *models.NewsItem) (*models.NewsItem, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	m.items[n.ID] = *n
	return n, nil
}

func (m *memNews) Update(ctx context.Context, n *models.NewsItem) error {
	if _, ok := m.items[n.ID]; !ok {
		return common.ErrorNotFound
	}
	m.items[n.ID] = *n
	return nil
}

func (m *memNews) Delete(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(m.items, id)
	return nil
}

type memBanners struct{ items map[string]models.Banner }

func (m *memBanners) ListActive(ctx context.Context) ([]models.Banner, error) {
	out := make([]models.Banner, 0)
	for _, b := range m.items {
		if b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBanners) ListAll(ctx context.Context) ([]models.Banner, error) {
	out := make([]models.Banner, 0)
	for _, b := range m.items {
		out = append(out, b)
	}
	return out, nil
}

func (m *memBanners) Create(ctx context.Context, b *models.Banner) (*models.Banner, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	m.items[b.ID] = *b
	return b, nil
}

func (m *memBanners) Update(ctx context.Context, b *models.Banner) error {
	if _, ok := m.items[b.ID]; !ok {
		return common.ErrorNotFound
	}
	m.items[b.ID] = *b
	return nil
}

func (m *memBanners) Delete(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(m.items, id)
	return nil
}

// --- manager ---

type fakeRepoManager struct {
	users   *memUsers
	admins  *memAdmins
	orders  *memOrders
	games   *memGames
	news    *memNews
	banners *memBanners
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:   newMemUsers(),
		admins:  newMemAdmins(),
		orders:  &memOrders{},
		games:   &memGames{games: map[string]models.Game{}},
		news:    &memNews{items: map[string]models.NewsItem{}},
		banners: &memBanners{items: map[string]models.Banner{}},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error {
	return errors.New("not used")
}
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository           { return m.users }
func (m *fakeRepoManager) Admins(dbx.DBTX) admins.Repository         { return m.admins }
func (m *fakeRepoManager) Orders(dbx.DBTX) orders.Repository         { return m.orders }
func (m *fakeRepoManager) Games(dbx.DBTX) catalog.GameRepository     { return m.games }
func (m *fakeRepoManager) News(dbx.DBTX) catalog.NewsRepository      { return m.news }
func (m *fakeRepoManager) Banners(dbx.DBTX) catalog.BannerRepository { return m.banners }
