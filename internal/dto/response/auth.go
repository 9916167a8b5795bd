package response

import (
	"time"

	"seat-booking/internal/data/entity"
)

type IdentityResponse struct {
	Username string          `json:"username"`
	Name     string          `json:"name"`
	IsAdmin  bool            `json:"isAdmin"`
	Role     entity.UserRole `json:"role"`
}

type AuthResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	User      IdentityResponse `json:"user"`
}

// CurrentUserResponse carries a null user for anonymous callers.
type CurrentUserResponse struct {
	User *IdentityResponse `json:"user"`
}

func IdentityToResponse(identity entity.Identity) IdentityResponse {
	return IdentityResponse{
		Username: identity.Username,
		Name:     identity.Name,
		IsAdmin:  identity.IsAdmin,
		Role:     identity.Role(),
	}
}

func SessionToResponse(session *entity.Session) AuthResponse {
	return AuthResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      IdentityToResponse(session.Identity()),
	}
}
