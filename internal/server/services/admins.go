package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/gamestore/internal/common"
	"github.com/dmitrijs2005/gamestore/internal/server/auth"
	"github.com/dmitrijs2005/gamestore/internal/server/config"
	"github.com/dmitrijs2005/gamestore/internal/server/models"
	"github.com/dmitrijs2005/gamestore/internal/server/repositories/repomanager"
)

// AdminService provisions the single admin account and manages its
// sessions. A session is a signed token whose jti names an admin_sessions
// row, so it can expire or be revoked independently of the password.
type AdminService struct {
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	jwtSecret       []byte
	sessionValidity time.Duration
	initialPassword string
	now             func() time.Time
}

func NewAdminService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AdminService {
	return &AdminService{
		db:              db,
		repomanager:     m,
		jwtSecret:       []byte(cfg.SecretKey),
		sessionValidity: cfg.AdminTokenValidityDuration,
		initialPassword: cfg.AdminPassword,
		now:             time.Now,
	}
}

// EnsureAdmin creates the admin account if it does not exist yet. It never
// replaces an existing account, so a changed configured password has no
// effect after the first start.
func (s *AdminService) EnsureAdmin(ctx context.Context) (bool, error) {
	hash, err := auth.HashPassword(s.initialPassword)
	if err != nil {
		return false, err
	}

	created, err := s.repomanager.Admins(s.db).Ensure(ctx, &models.Admin{
		Username:     models.AdminUsername,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	})
	if err != nil {
		return false, internalError("ensure admin", err)
	}
	return created, nil
}

// Login opens a new admin session and returns its token.
func (s *AdminService) Login(ctx context.Context, username, password string) (string, error) {
	repo := s.repomanager.Admins(s.db)

	admin, err := repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.CompareDummy(password)
			return "", common.ErrorUnauthorized
		}
		return "", internalError("find admin", err)
	}

	if !auth.ComparePasswordAndHash(password, admin.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	now := s.now()
	claims := auth.NewClaims(admin.ID, auth.AudienceAdmin, now, s.sessionValidity)

	err = repo.CreateSession(ctx, &models.AdminSession{
		ID:        claims.ID,
		AdminID:   admin.ID,
		ExpiresAt: claims.ExpiresAt.Time,
		CreatedAt: now,
	})
	if err != nil {
		return "", internalError("create admin session", err)
	}

	token, err := auth.GenerateToken(claims, s.jwtSecret)
	if err != nil {
		return "", internalError("sign token", err)
	}
	return token, nil
}

// AuthorizeAdmin accepts a token only while its session is live: signed by
// us for the admin audience, unexpired, present, unrevoked and owned by an
// existing admin. Every rejection is ErrorUnauthorized.
func (s *AdminService) AuthorizeAdmin(ctx context.Context, token string) (*models.AdminSession, error) {
	now := s.now()

	claims, err := auth.ParseToken(token, auth.AudienceAdmin, s.jwtSecret, now)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	repo := s.repomanager.Admins(s.db)

	session, err := repo.FindSession(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, internalError("find admin session", err)
	}

	if session.AdminID != claims.Subject || !session.Usable(now) {
		return nil, common.ErrorUnauthorized
	}

	if _, err := repo.FindByID(ctx, session.AdminID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, internalError("find admin", err)
	}

	return session, nil
}

// Logout revokes the session. A session that is already revoked reports
// ErrorUnauthorized.
func (s *AdminService) Logout(ctx context.Context, sessionID string) error {
	err := s.repomanager.Admins(s.db).RevokeSession(ctx, sessionID, s.now())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthorized
		}
		return internalError("revoke admin session", err)
	}
	return nil
}
