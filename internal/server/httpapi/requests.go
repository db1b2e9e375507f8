package httpapi

import (
	"fmt"

	"github.com/dmitrijs2005/gamestore/internal/common"
	"github.com/dmitrijs2005/gamestore/internal/server/models"
	"github.com/dmitrijs2005/gamestore/internal/server/services"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
)

type validatable interface {
	Validate() error
}

// bind decodes the JSON body into dst and runs its presence checks.
func bind(c *fiber.Ctx, dst validatable) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid request body")
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	return nil
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r credentialsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type registerRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone"`
}

func (r registerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.FullName, validation.Required),
	)
}

func (r registerRequest) input() services.RegisterInput {
	return services.RegisterInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		FullName: r.FullName,
		Phone:    r.Phone,
	}
}

type profileRequest struct {
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
}

func (r profileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

type orderRequest struct {
	GameID        string  `json:"game_id"`
	GameName      string  `json:"game_name"`
	PlayerID      string  `json:"player_id"`
	Amount        string  `json:"amount"`
	Price         string  `json:"price"`
	Currency      string  `json:"currency"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email"`
}

func (r orderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.GameID, validation.Required),
		validation.Field(&r.GameName, validation.Required),
		validation.Field(&r.PlayerID, validation.Required),
		validation.Field(&r.Amount, validation.Required),
		validation.Field(&r.Price, validation.Required),
		validation.Field(&r.Currency, validation.Required),
		validation.Field(&r.CustomerName, validation.Required),
		validation.Field(&r.CustomerPhone, validation.Required),
	)
}

func (r orderRequest) input() services.OrderInput {
	return services.OrderInput{
		GameID:        r.GameID,
		GameName:      r.GameName,
		PlayerID:      r.PlayerID,
		Amount:        r.Amount,
		Price:         r.Price,
		Currency:      r.Currency,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
	}
}

// isActive defaults to true when the field is absent.
func isActive(v *bool) bool {
	return v == nil || *v
}

type gameRequest struct {
	Name          string                `json:"name"`
	NameAr        string                `json:"name_ar"`
	Description   string                `json:"description"`
	DescriptionAr string                `json:"description_ar"`
	ImageURL      string                `json:"image_url"`
	Prices        []models.PricePackage `json:"prices"`
	IsActive      *bool                 `json:"is_active"`
}

func (r gameRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.NameAr, validation.Required),
		validation.Field(&r.ImageURL, validation.Required),
		validation.Field(&r.Prices, validation.NotNil),
	)
}

func (r gameRequest) model() *models.Game {
	return &models.Game{
		Name:          r.Name,
		NameAr:        r.NameAr,
		Description:   r.Description,
		DescriptionAr: r.DescriptionAr,
		ImageURL:      r.ImageURL,
		Prices:        r.Prices,
		IsActive:      isActive(r.IsActive),
	}
}

type newsRequest struct {
	Title     string `json:"title"`
	TitleAr   string `json:"title_ar"`
	Content   string `json:"content"`
	ContentAr string `json:"content_ar"`
	IsActive  *bool  `json:"is_active"`
}

func (r newsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.TitleAr, validation.Required),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.ContentAr, validation.Required),
	)
}

func (r newsRequest) model() *models.NewsItem {
	return &models.NewsItem{
		Title:     r.Title,
		TitleAr:   r.TitleAr,
		Content:   r.Content,
		ContentAr: r.ContentAr,
		IsActive:  isActive(r.IsActive),
	}
}

type bannerRequest struct {
	Title    string  `json:"title"`
	TitleAr  string  `json:"title_ar"`
	ImageURL string  `json:"image_url"`
	Link     *string `json:"link"`
	IsActive *bool   `json:"is_active"`
}

func (r bannerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.TitleAr, validation.Required),
		validation.Field(&r.ImageURL, validation.Required),
	)
}

func (r bannerRequest) model() *models.Banner {
	return &models.Banner{
		Title:    r.Title,
		TitleAr:  r.TitleAr,
		ImageURL: r.ImageURL,
		Link:     r.Link,
		IsActive: isActive(r.IsActive),
	}
}

type userStatusRequest struct {
	IsActive *bool `json:"is_active"`
}

func (r userStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IsActive, validation.NotNil),
	)
}

type uploadRequest struct {
	ContentType string `json:"content_type"`
}

func (r uploadRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ContentType, validation.Required),
	)
}
