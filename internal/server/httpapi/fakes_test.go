package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gamestore/internal/common"
	"github.com/dmitrijs2005/gamestore/internal/logging"
	"github.com/dmitrijs2005/gamestore/internal/server/models"
	"github.com/dmitrijs2005/gamestore/internal/server/services"
)

type fakeAccounts struct {
	users    map[string]*models.User // by token
	register func(services.RegisterInput) (*services.Session, error)
	loginErr error
	authErr  error
	profile  func(id string, in services.ProfileInput) (*models.User, error)
	statuses map[string]bool
}

func (f *fakeAccounts) Register(ctx context.Context, in services.RegisterInput) (*services.Session, error) {
	return f.register(in)
}

func (f *fakeAccounts) Login(ctx context.Context, username, password string) (*services.Session, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &services.Session{User: &models.User{ID: "u-" + username, Username: username}, Token: "tok-" + username}, nil
}

func (f *fakeAccounts) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeAccounts) UpdateProfile(ctx context.Context, userID string, in services.ProfileInput) (*models.User, error) {
	return f.profile(userID, in)
}

func (f *fakeAccounts) AuthorizeUser(ctx context.Context, token string) (*models.User, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	if u, ok := f.users[token]; ok {
		return u, nil
	}
	return nil, common.ErrorUnauthorized
}

func (f *fakeAccounts) SetUserActive(ctx context.Context, userID string, active bool) error {
	if userID == "ghost" {
		return common.ErrorNotFound
	}
	f.statuses[userID] = active
	return nil
}

type fakeAdmins struct {
	sessions map[string]*models.AdminSession // by token
	revoked  []string
}

func (f *fakeAdmins) Login(ctx context.Context, username, password string) (string, error) {
	if username != "admin" || password != "xliunx" {
		return "", common.ErrorUnauthorized
	}
	return "admin-token", nil
}

func (f *fakeAdmins) AuthorizeAdmin(ctx context.Context, token string) (*models.AdminSession, error) {
	if s, ok := f.sessions[token]; ok {
		return s, nil
	}
	return nil, common.ErrorUnauthorized
}

func (f *fakeAdmins) Logout(ctx context.Context, sessionID string) error {
	f.revoked = append(f.revoked, sessionID)
	return nil
}

type fakeCatalog struct {
	games   []models.Game
	created []any
	err     error

	// when gate is set, ListGames signals entered and blocks until gate closes
	gate    chan struct{}
	entered chan struct{}

	panicOnNews bool
}

func (f *fakeCatalog) ListGames(ctx context.Context) ([]models.Game, error) {
	if f.gate != nil {
		close(f.entered)
		<-f.gate
	}
	return f.games, f.err
}

func (f *fakeCatalog) GetGame(ctx context.Context, id string) (*models.Game, error) {
	for _, g := range f.games {
		if g.ID == id {
			return &g, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeCatalog) ListAllGames(ctx context.Context) ([]models.Game, error) { return f.games, f.err }

func (f *fakeCatalog) CreateGame(ctx context.Context, g *models.Game) (string, error) {
	f.created = append(f.created, g)
	return "new-game", f.err
}

func (f *fakeCatalog) UpdateGame(ctx context.Context, id string, g *models.Game) error {
	if _, err := f.GetGame(ctx, id); err != nil {
		return err
	}
	return nil
}

func (f *fakeCatalog) DeleteGame(ctx context.Context, id string) error {
	_, err := f.GetGame(ctx, id)
	return err
}

func (f *fakeCatalog) ListNews(ctx context.Context) ([]models.NewsItem, error) {
	if f.panicOnNews {
		panic("news store exploded")
	}
	return []models.NewsItem{}, f.err
}

func (f *fakeCatalog) ListAllNews(ctx context.Context) ([]models.NewsItem, error) {
	return []models.NewsItem{}, f.err
}

func (f *fakeCatalog) CreateNews(ctx context.Context, n *models.NewsItem) (string, error) {
	f.created = append(f.created, n)
	return "new-news", f.err
}

func (f *fakeCatalog) UpdateNews(ctx context.Context, id string, n *models.NewsItem) error {
	return common.ErrorNotFound
}

func (f *fakeCatalog) DeleteNews(ctx context.Context, id string) error { return common.ErrorNotFound }

func (f *fakeCatalog) ListBanners(ctx context.Context) ([]models.Banner, error) {
	return []models.Banner{}, f.err
}

func (f *fakeCatalog) ListAllBanners(ctx context.Context) ([]models.Banner, error) {
	return []models.Banner{}, f.err
}

func (f *fakeCatalog) CreateBanner(ctx context.Context, b *models.Banner) (string, error) {
	f.created = append(f.created, b)
	return "new-banner", f.err
}

func (f *fakeCatalog) UpdateBanner(ctx context.Context, id string, b *models.Banner) error {
	return nil
}

func (f *fakeCatalog) DeleteBanner(ctx context.Context, id string) error { return common.ErrorNotFound }

type placedCall struct {
	in    services.OrderInput
	owner *string
}

type fakeOrders struct {
	placed []placedCall
	orders []models.Order
}

func (f *fakeOrders) Place(ctx context.Context, in services.OrderInput, userID *string) (*services.PlacedOrder, error) {
	f.placed = append(f.placed, placedCall{in: in, owner: userID})
	return &services.PlacedOrder{
		Order:       &models.Order{ID: "o-1", UserID: userID, Status: models.OrderStatusPending},
		WhatsAppURL: "https://wa.me/1?text=x",
	}, nil
}

func (f *fakeOrders) ListAll(ctx context.Context) ([]models.Order, error) { return f.orders, nil }

func (f *fakeOrders) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	out := make([]models.Order, 0)
	for _, o := range f.orders {
		if o.UserID != nil && *o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeUploads struct{}

func (fakeUploads) PresignImageUpload(ctx context.Context, contentType string) (*services.UploadTicket, error) {
	if contentType != "image/png" {
		return nil, common.ErrorValidation
	}
	return &services.UploadTicket{Key: "catalog/k.png", UploadURL: "http://s3/put", ImageURL: "http://s3/catalog/k.png"}, nil
}

type logEntry struct {
	level string
	msg   string
	args  []any
}

// recLogger keeps every entry so tests can inspect what was logged.
type recLogger struct {
	mu      *sync.Mutex
	entries *[]logEntry
	with    []any
}

func newRecLogger() *recLogger {
	return &recLogger{mu: &sync.Mutex{}, entries: &[]logEntry{}}
}

func (l *recLogger) add(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	all := append(append([]any{}, l.with...), args...)
	*l.entries = append(*l.entries, logEntry{level: level, msg: msg, args: all})
}

func (l *recLogger) Info(_ context.Context, msg string, args ...any)  { l.add("info", msg, args) }
func (l *recLogger) Warn(_ context.Context, msg string, args ...any)  { l.add("warn", msg, args) }
func (l *recLogger) Error(_ context.Context, msg string, args ...any) { l.add("error", msg, args) }

func (l *recLogger) With(args ...any) logging.Logger {
	return &recLogger{mu: l.mu, entries: l.entries, with: append(append([]any{}, l.with...), args...)}
}

// requests returns the access-log entries as path -> status.
func (l *recLogger) requests() map[string]any {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := map[string]any{}
	for _, e := range *l.entries {
		if e.msg != "request" {
			continue
		}
		var path string
		var status any
		for i := 0; i+1 < len(e.args); i += 2 {
			switch e.args[i] {
			case "path":
				path, _ = e.args[i+1].(string)
			case "status":
				status = e.args[i+1]
			}
		}
		out[path] = status
	}
	return out
}

type fixture struct {
	server   *HTTPServer
	logs     *recLogger
	accounts *fakeAccounts
	admins   *fakeAdmins
	catalog  *fakeCatalog
	orders   *fakeOrders
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	alice := &models.User{ID: "alice-id", Username: "alice", Email: "alice@x.com", PasswordHash: "secret-digest", IsActive: true}
	f := &fixture{
		accounts: &fakeAccounts{
			users:    map[string]*models.User{"alice-token": alice},
			statuses: map[string]bool{},
		},
		admins: &fakeAdmins{
			sessions: map[string]*models.AdminSession{
				"admin-token": {ID: "sess-1", AdminID: "admin-id", ExpiresAt: time.Now().Add(time.Hour)},
			},
		},
		catalog: &fakeCatalog{games: []models.Game{{ID: "g1", Name: "PUBG Mobile UC", IsActive: true}}},
		orders: &fakeOrders{orders: []models.Order{
			{ID: "o-a", UserID: &alice.ID},
			{ID: "o-anon"},
		}},
	}

	f.logs = newRecLogger()
	f.server = NewHTTPServer(":0", f.logs, Services{
		Accounts: f.accounts,
		Admins:   f.admins,
		Catalog:  f.catalog,
		Orders:   f.orders,
		Uploads:  fakeUploads{},
	})
	return f
}

// do sends a request through the fiber app and decodes the JSON body.
func (f *fixture) do(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			r = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			r = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := f.server.app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	out := map[string]any{}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("decode %s %s: %v (%s)", method, path, err, raw)
		}
	}
	return resp.StatusCode, out
}
