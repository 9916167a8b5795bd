package usecase

import (
	"seat-booking/internal/data/entity"
)

// OperationClass groups operations by who may call them.
type OperationClass int

const (
	Public OperationClass = iota
	AuthenticatedOnly
	AdminOnly
)

func (c OperationClass) String() string {
	switch c {
	case Public:
		return "public"
	case AuthenticatedOnly:
		return "authenticated"
	case AdminOnly:
		return "admin"
	default:
		return "unknown"
	}
}

// Authorize decides whether identity may run an operation of class. A nil
// identity, or one without a username, is anonymous. Denials are
// ErrUnauthenticated or ErrForbidden.
func Authorize(class OperationClass, identity *entity.Identity) error {
	if class == Public {
		return nil
	}

	if identity == nil || identity.Username == "" {
		return ErrUnauthenticated
	}

	switch class {
	case AuthenticatedOnly:
		return nil
	case AdminOnly:
		if identity.IsAdmin {
			return nil
		}
		return ErrForbidden
	default:
		// unknown classes are closed
		return ErrForbidden
	}
}
