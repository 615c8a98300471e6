package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/clawguinness/clawboard/internal/ctxkeys"
	"github.com/clawguinness/clawboard/internal/model"
	"github.com/clawguinness/clawboard/internal/service"
)

const APIKeyHeader = "x-api-key"

// Authenticator resolves an API key to its agent
type Authenticator interface {
	Authenticate(ctx context.Context, apiKey string) (*model.Agent, error)
}

var _ Authenticator = (*service.AgentService)(nil)

// RequireAgent rejects requests without a valid x-api-key header and adds
// the authenticated agent to the context
func RequireAgent(auth Authenticator) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			agent, err := auth.Authenticate(r.Context(), r.Header.Get(APIKeyHeader))
			if errors.Is(err, service.ErrInvalidAPIKey) {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if err != nil {
				slog.Error("failed to authenticate request", "error", err, "path", r.URL.Path)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx := ctxkeys.WithAgent(r.Context(), agent)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}
