package authapi

import (
	"context"
	"net/http"

	"taskd/cmd/internal/httpjson"
)

type contextKey int

const (
	ctxKeyUserID contextKey = iota
	ctxKeySessionID
)

// UserIDFrom returns the authenticated user id injected by RequireSession.
func UserIDFrom(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ctxKeyUserID).(int64)
	return id, ok
}

// SessionIDFrom returns the presented session token injected by RequireSession.
func SessionIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKeySessionID).(string)
	return id, ok
}

// RequireSession gates protected routes. It extracts the credential cookie,
// validates the token, and injects the resolved user id and session id into
// the request context.
//
// Missing and invalid tokens produce the identical 401 signal so callers
// cannot distinguish "revoked" from "never existed".
func (h *Handler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionTokenFromRequest(r, h.sessCfg)
		if token == "" {
			writeUnauthenticated(w)
			return
		}

		v, err := h.sessions.Validate(r.Context(), token)
		if err != nil {
			h.log.Error("auth.gate.validate.fail", "err", err)
			httpjson.WriteError(w, http.StatusInternalServerError, "server_error", "internal error")
			return
		}
		if !v.Valid {
			writeUnauthenticated(w)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyUserID, v.UserID)
		ctx = context.WithValue(ctx, ctxKeySessionID, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthenticated(w http.ResponseWriter) {
	httpjson.WriteError(w, http.StatusUnauthorized, "unauthenticated", "authentication required")
}
