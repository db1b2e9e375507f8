package models

import "time"

// OrderStatusPending is the status every new order starts in.
const OrderStatusPending = "pending"

// Order is a top-up purchase request. UserID is nil for anonymous orders.
type Order struct {
	ID            string    `json:"id"`
	UserID        *string   `json:"user_id"`
	GameID        string    `json:"game_id"`
	GameName      string    `json:"game_name"`
	PlayerID      string    `json:"player_id"`
	Amount        string    `json:"amount"`
	Price         string    `json:"price"`
	Currency      string    `json:"currency"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerEmail *string   `json:"customer_email"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
