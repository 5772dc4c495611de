// Package policy holds authorization rules that depend only on domain identities.
package policy

import (
	domainerrors "blog/internal/domain/errors"
)

// AuthorizeMutation allows a caller to change or remove a resource only when
// the caller owns it.
func AuthorizeMutation(ownerID, callerID int64) error {
	if ownerID != callerID {
		return domainerrors.ErrBlogOwnershipViolation
	}

	return nil
}
