package services

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/gamestore/internal/server/config"
	"github.com/dmitrijs2005/gamestore/internal/server/models"
	"github.com/dmitrijs2005/gamestore/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// OrderInput is what a buyer submits. Ownership is decided by the caller's
// credential, never by the payload.
type OrderInput struct {
	GameID        string
	GameName      string
	PlayerID      string
	Amount        string
	Price         string
	Currency      string
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
}

// PlacedOrder is a stored order plus the deep link that hands it to the
// store's WhatsApp account.
type PlacedOrder struct {
	Order       *models.Order
	WhatsAppURL string
}

type OrderService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	whatsAppNumber string
	now            func() time.Time
}

func NewOrderService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *OrderService {
	return &OrderService{
		db:             db,
		repomanager:    m,
		whatsAppNumber: cfg.OrderWhatsAppNumber,
		now:            time.Now,
	}
}

// Place stores a pending order. userID is nil for anonymous buyers.
func (s *OrderService) Place(ctx context.Context, in OrderInput, userID *string) (*PlacedOrder, error) {
	order, err := s.repomanager.Orders(s.db).Create(ctx, &models.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		GameID:        in.GameID,
		GameName:      in.GameName,
		PlayerID:      in.PlayerID,
		Amount:        in.Amount,
		Price:         in.Price,
		Currency:      in.Currency,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		Status:        models.OrderStatusPending,
		CreatedAt:     s.now(),
	})
	if err != nil {
		return nil, internalError("create order", err)
	}

	return &PlacedOrder{Order: order, WhatsAppURL: s.whatsAppURL(order)}, nil
}

func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	orders, err := s.repomanager.Orders(s.db).ListAll(ctx)
	if err != nil {
		return nil, internalError("list orders", err)
	}
	return orders, nil
}

// ListForUser returns the caller's own orders, newest first.
func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := s.repomanager.Orders(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, internalError("list user orders", err)
	}
	return orders, nil
}

func (s *OrderService) whatsAppURL(o *models.Order) string {
	lines := []string{
		"طلب جديد",
		"----",
		"اللعبة: " + o.GameName,
		"الآي دي: " + o.PlayerID,
		"الكمية: " + o.Amount,
		fmt.Sprintf("السعر: %s %s", o.Price, o.Currency),
		"اسم العميل: " + o.CustomerName,
		"رقم الهاتف: " + o.CustomerPhone,
		"----",
		"رقم الطلب: " + o.ID,
	}
	text := strings.ReplaceAll(url.QueryEscape(strings.Join(lines, "\n")), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsAppNumber, text)
}
