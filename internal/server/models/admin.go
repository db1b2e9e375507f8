package models

import "time"

// AdminUsername is the only username an Admin row may carry.
const AdminUsername = "admin"

// Admin is the singleton store administrator.
type Admin struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// AdminSession is one issued admin credential. Its ID is the token's jti.
type AdminSession struct {
	ID        string
	AdminID   string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// Usable reports whether the session can still authorize requests at now.
func (s *AdminSession) Usable(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
