package adaptor

import (
	"net/http"

	"seat-booking/internal/dto/request"
	"seat-booking/internal/dto/response"
	"seat-booking/internal/usecase"
	"seat-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.service.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.SetSessionCookie(w, session.Token, session.ExpiresAt)
	utils.ResponseSuccess(w, "Login successful", response.SessionToResponse(session))
}

// Logout handles POST /api/logout. It always succeeds and clears the cookie,
// even when the session could not be revoked.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := utils.GetTokenFromContext(r.Context()); ok {
		if err := h.service.Invalidate(r.Context(), token); err != nil {
			h.log.Error("Failed to revoke session on logout", zap.Error(err))
		}
	}

	utils.ClearSessionCookie(w)
	utils.ResponseSuccess(w, "Logged out successfully", nil)
}

// CurrentUser handles GET /api/current-user
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	resp := response.CurrentUserResponse{}
	if identity, ok := utils.GetIdentityFromContext(r.Context()); ok {
		user := response.IdentityToResponse(*identity)
		resp.User = &user
	}

	utils.ResponseSuccess(w, "success", resp)
}
