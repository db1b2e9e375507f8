package models

import "time"

// PricePackage is one purchasable amount of in-game currency.
type PricePackage struct {
	Amount   string `json:"amount"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
}

type Game struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	NameAr        string         `json:"name_ar"`
	Description   string         `json:"description"`
	DescriptionAr string         `json:"description_ar"`
	ImageURL      string         `json:"image_url"`
	Prices        []PricePackage `json:"prices"`
	IsActive      bool           `json:"is_active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     *time.Time     `json:"updated_at,omitempty"`
}

type NewsItem struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	TitleAr   string     `json:"title_ar"`
	Content   string     `json:"content"`
	ContentAr string     `json:"content_ar"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Banner struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	TitleAr   string     `json:"title_ar"`
	ImageURL  string     `json:"image_url"`
	Link      *string    `json:"link"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
