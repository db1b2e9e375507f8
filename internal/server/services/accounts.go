package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/gamestore/internal/common"
	"github.com/dmitrijs2005/gamestore/internal/dbx"
	"github.com/dmitrijs2005/gamestore/internal/server/auth"
	"github.com/dmitrijs2005/gamestore/internal/server/config"
	"github.com/dmitrijs2005/gamestore/internal/server/models"
	"github.com/dmitrijs2005/gamestore/internal/server/repositories/repomanager"
)

// RegisterInput is the data needed to open an end-user account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Phone    *string
}

// ProfileInput holds the profile fields a user may change about themselves.
type ProfileInput struct {
	FullName string
	Email    string
	Phone    *string
}

// Session is an authenticated user together with a freshly issued token.
type Session struct {
	User  *models.User
	Token string
}

// AccountService owns end-user accounts: registration, login, profile
// maintenance and verification of user credentials.
type AccountService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
	now           func() time.Time
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AccountService {
	return &AccountService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.UserTokenValidityDuration,
		now:           time.Now,
	}
}

// Register creates an active account and logs it in. The username and email
// lookups only produce friendlier early errors; the unique constraints
// decide races between concurrent registrations.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	repo := s.repomanager.Users(s.db)

	if _, err := repo.FindByUsername(ctx, in.Username); err == nil {
		return nil, common.ErrUsernameTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, internalError("find user by username", err)
	}

	if _, err := repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, common.ErrEmailTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, internalError("find user by email", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, passThrough("hash password", err)
	}

	now := s.now()
	user, err := repo.Create(ctx, &models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FullName:     in.FullName,
		Phone:        in.Phone,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, passThrough("create user", err)
	}

	return s.issue(user)
}

// Login checks the username/password pair. Unknown users, wrong passwords
// and deactivated accounts all yield the same ErrorUnauthorized.
func (s *AccountService) Login(ctx context.Context, username, password string) (*Session, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.CompareDummy(password)
			return nil, common.ErrorUnauthorized
		}
		return nil, internalError("find user by username", err)
	}

	if !auth.ComparePasswordAndHash(password, user.PasswordHash) || !user.IsActive {
		return nil, common.ErrorUnauthorized
	}

	return s.issue(user)
}

// GetProfile returns the account view without its password digest.
func (s *AccountService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).FindByID(ctx, userID)
	if err != nil {
		return nil, passThrough("find user by id", err)
	}
	return redact(user), nil
}

// UpdateProfile replaces full name, email and phone. Moving to an email held
// by another account fails with common.ErrEmailInUse.
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*models.User, error) {
	var updated *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		current, err := repo.FindByID(ctx, userID)
		if err != nil {
			return err
		}

		if in.Email != current.Email {
			other, err := repo.FindByEmail(ctx, in.Email)
			switch {
			case err == nil && other.ID != userID:
				return common.ErrEmailInUse
			case err != nil && !errors.Is(err, common.ErrorNotFound):
				return err
			}
		}

		updated, err = repo.UpdateProfile(ctx, userID, in.FullName, in.Email, in.Phone, s.now())
		return err
	})
	if err != nil {
		return nil, passThrough("update profile", err)
	}

	return redact(updated), nil
}

// AuthorizeUser resolves a bearer credential to an active account. Any
// credential problem collapses to ErrorUnauthorized.
func (s *AccountService) AuthorizeUser(ctx context.Context, token string) (*models.User, error) {
	claims, err := auth.ParseToken(token, auth.AudienceUser, s.jwtSecret, s.now())
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	user, err := s.repomanager.Users(s.db).FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, internalError("find user by id", err)
	}

	if !user.IsActive {
		return nil, common.ErrorUnauthorized
	}

	return redact(user), nil
}

// SetUserActive switches an account on or off. Deactivated accounts can
// neither log in nor use tokens issued earlier.
func (s *AccountService) SetUserActive(ctx context.Context, userID string, active bool) error {
	if err := s.repomanager.Users(s.db).SetActive(ctx, userID, active, s.now()); err != nil {
		return passThrough("set user active", err)
	}
	return nil
}

func (s *AccountService) issue(user *models.User) (*Session, error) {
	token, err := auth.GenerateToken(auth.NewClaims(user.ID, auth.AudienceUser, s.now(), s.tokenValidity), s.jwtSecret)
	if err != nil {
		return nil, internalError("sign token", err)
	}
	return &Session{User: redact(user), Token: token}, nil
}

func redact(u *models.User) *models.User {
	c := *u
	c.PasswordHash = ""
	return &c
}
