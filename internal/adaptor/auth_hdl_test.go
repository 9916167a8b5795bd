package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"seat-booking/internal/data/entity"
	"seat-booking/internal/usecase"
	"seat-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthService struct {
	invalidateErr error
	invalidated   []string
}

func (s *stubAuthService) Authenticate(ctx context.Context, username, secret string) (*entity.Session, error) {
	return nil, usecase.ErrInvalidCredentials
}

func (s *stubAuthService) Resolve(ctx context.Context, token string) (*entity.Identity, error) {
	return nil, usecase.ErrUnauthenticated
}

func (s *stubAuthService) Invalidate(ctx context.Context, token string) error {
	s.invalidated = append(s.invalidated, token)
	return s.invalidateErr
}

func (s *stubAuthService) SessionTTL() time.Duration { return time.Hour }

func TestLogout(t *testing.T) {
	tests := []struct {
		name          string
		token         string
		invalidateErr error
	}{
		{name: "with_session", token: "tok-1"},
		{name: "without_session"},
		{name: "store_down", token: "tok-2", invalidateErr: fmt.Errorf("invalidate session: %w", usecase.ErrStoreUnavailable)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &stubAuthService{invalidateErr: tt.invalidateErr}
			handler := NewAuthHandler(auth, zap.NewNop())

			req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
			if tt.token != "" {
				req = req.WithContext(utils.SetTokenContext(req.Context(), tt.token))
			}
			rec := httptest.NewRecorder()
			handler.Logout(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			if tt.token != "" {
				assert.Equal(t, []string{tt.token}, auth.invalidated)
			} else {
				assert.Empty(t, auth.invalidated)
			}

			var cleared *http.Cookie
			for _, c := range rec.Result().Cookies() {
				if c.Name == utils.SessionCookieName {
					cleared = c
				}
			}
			require.NotNil(t, cleared, "logout must always clear the session cookie")
			assert.Empty(t, cleared.Value)
			assert.Negative(t, cleared.MaxAge)
		})
	}
}
