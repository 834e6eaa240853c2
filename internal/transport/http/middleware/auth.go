package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/DuongAty/workout-planner/internal/pkg/log"
	"github.com/DuongAty/workout-planner/internal/service"
	"github.com/DuongAty/workout-planner/internal/transport/http/apierrors"
)

// Authenticator проверяет access-токен и возвращает владельца.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (uuid.UUID, string, error)
}

// Auth требует валидный Bearer access-токен: проверяет подпись, срок
// и блэклист, и кладёт account_id/username/«сырой» токен в контекст.
// Запросы без токена или с недействительным токеном получают 401.
func Auth(auth Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				apierrors.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			accountID, username, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				log.From(r.Context()).LogAttrs(r.Context(), slog.LevelWarn, "auth_rejected",
					slog.String("path", r.URL.Path),
					slog.String("error", err.Error()),
				)
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxAccountID, accountID)
			ctx = context.WithValue(ctx, ctxUsername, username)
			ctx = context.WithValue(ctx, ctxAccessToken, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken извлекает токен из Authorization: Bearer <token>.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) || len(auth) <= len(prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}
