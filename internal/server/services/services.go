// Package services contains server-side business logic: end-user accounts
// and their session guard, the admin session guard, and the catalog, order
// and upload gateways those guards protect.
package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gamestore/internal/common"
)

// internalError keeps the cause for logs while letting the boundary match
// common.ErrorInternal.
func internalError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", common.ErrorInternal, op, err)
}

// passThrough returns sentinel errors unchanged and wraps everything else
// as internal.
func passThrough(op string, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrorConflict),
		errors.Is(err, common.ErrorValidation),
		errors.Is(err, common.ErrorUnauthorized):
		return err
	}
	return internalError(op, err)
}
