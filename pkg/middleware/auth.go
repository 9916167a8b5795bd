package middleware

import (
	"errors"
	"net/http"

	"seat-booking/internal/usecase"
	"seat-booking/pkg/utils"

	"go.uber.org/zap"
)

// Session resolves the caller's session, if any, and stores the identity and
// token in the request context. Requests without a valid session continue
// anonymously; Require decides whether that is enough. A session store
// failure answers 503.
func Session(auth usecase.AuthService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := utils.TokenFromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetTokenContext(r.Context(), token)

			identity, err := auth.Resolve(ctx, token)
			switch {
			case err == nil:
				ctx = utils.SetIdentityContext(ctx, *identity)
			case errors.Is(err, usecase.ErrUnauthenticated):
				logger.Debug("Invalid or expired session", zap.String("path", r.URL.Path))
			default:
				// the session may still be valid
				logger.Error("Failed to resolve session", zap.Error(err), zap.String("path", r.URL.Path))
				utils.ResponseServiceUnavailable(w, "Session store is unavailable, try again")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Require rejects requests whose identity does not satisfy class: 401 when
// there is no valid session, 403 when the role is insufficient.
func Require(class usecase.OperationClass, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, _ := utils.GetIdentityFromContext(r.Context())

			err := usecase.Authorize(class, identity)
			switch {
			case err == nil:
				next.ServeHTTP(w, r)
			case errors.Is(err, usecase.ErrUnauthenticated):
				utils.ResponseUnauthorized(w, "Authentication required")
			default:
				logger.Warn("Access denied",
					zap.String("class", class.String()),
					zap.String("username", identity.Username),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
			}
		})
	}
}
