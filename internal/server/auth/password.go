package auth

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gamestore/internal/common"
	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = fmt.Errorf("%w: empty password", common.ErrorValidation)

// HashPassword returns the bcrypt digest of password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: %v", common.ErrorValidation, err)
		}
		return "", err
	}

	return string(hash), nil
}

// ComparePasswordAndHash reports whether password matches the bcrypt digest.
func ComparePasswordAndHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var (
	dummyOnce sync.Once
	dummyHash []byte
)

// CompareDummy spends the same bcrypt work as a real comparison. Login calls
// it for unknown usernames so timing does not reveal which names exist.
func CompareDummy(password string) {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
