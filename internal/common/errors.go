package common

import (
	"errors"
	"fmt"
)

var (

	// repository specific errors
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("conflict")

	// service specific errors
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// account-specific conflicts, matched with errors.Is against ErrorConflict too
	ErrUsernameTaken = fmt.Errorf("%w: username already registered", ErrorConflict)
	ErrEmailTaken    = fmt.Errorf("%w: email already registered", ErrorConflict)
	ErrEmailInUse    = fmt.Errorf("%w: email already in use", ErrorConflict)
)
