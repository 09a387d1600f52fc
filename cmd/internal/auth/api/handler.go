package authapi

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"taskd/cmd/identity"
	"taskd/cmd/internal/auth/session"
	"taskd/cmd/internal/httpjson"
	"taskd/cmd/security/password"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Handler wires the authentication HTTP endpoints to the identity and
// session services. Stores and services are injected; Handler owns no
// connections.
type Handler struct {
	log *slog.Logger
	cfg Config

	users     identity.Store
	sessions  *session.Service
	passwords password.Config
	sessCfg   session.Config

	// pool is used only for best-effort audit inserts; nil disables auditing.
	pool *pgxpool.Pool

	dummyHash string
}

// NewHandler constructs an auth Handler. pool may be nil (in-memory mode);
// audit logging is then disabled.
func NewHandler(log *slog.Logger, cfg Config, sessCfg session.Config, pwCfg password.Config, users identity.Store, sessions *session.Service, pool *pgxpool.Pool) *Handler {
	if log == nil {
		log = slog.Default()
	}

	h := &Handler{
		log:       log,
		cfg:       cfg,
		users:     users,
		sessions:  sessions,
		passwords: pwCfg,
		sessCfg:   sessCfg,
		pool:      pool,
	}

	// Dummy hash for timing-resistant login checks on unknown emails.
	if hash, err := pwCfg.Hash("dummy-password-for-timing-only"); err == nil {
		h.dummyHash = hash
	}

	return h
}

// Register wires auth routes onto the provided mux.
func (h *Handler) Register(mux *http.ServeMux) {
	if h == nil || mux == nil {
		return
	}
	mux.HandleFunc("/signup", h.handleSignup)
	mux.HandleFunc("/login", h.handleLogin)
	mux.Handle("/sessions", h.RequireSession(http.HandlerFunc(h.handleSessions)))
	mux.Handle("/sessions/revoke", h.RequireSession(http.HandlerFunc(h.handleRevoke)))
	mux.Handle("/logout", h.RequireSession(http.HandlerFunc(h.handleLogout)))
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req signupRequest
	if err := httpjson.Decode(w, r, h.cfg.MaxBodyBytes, &req); err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		httpjson.WriteError(w, http.StatusBadRequest, "validation_error", "email and password are required")
		return
	}
	if err := h.passwords.Validate(req.Password); err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "validation_error", "password does not meet requirements")
		return
	}

	hash, err := h.passwords.Hash(req.Password)
	if err != nil {
		h.log.Error("auth.signup.hash.fail", "err", err)
		httpjson.WriteError(w, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	ctx := r.Context()
	now := time.Now().UTC()
	ip := clientIP(r, h.cfg.TrustProxy)
	ua := strings.TrimSpace(r.UserAgent())

	u, err := h.users.CreateUser(ctx, identity.CreateUserInput{
		Email:        email,
		PasswordHash: hash,
		Now:          now,
	})
	if err != nil {
		if identity.IsConflict(err) {
			httpjson.WriteError(w, http.StatusBadRequest, "duplicate_user", "email already registered")
			return
		}
		h.log.Error("auth.signup.create.fail", "err", err)
		httpjson.WriteError(w, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	h.auditSignup(ctx, u.ID, ip, ua)
	httpjson.Write(w, http.StatusOK, httpjson.Success{Success: true})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	if err := httpjson.Decode(w, r, h.cfg.MaxBodyBytes, &req); err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	ctx := r.Context()
	now := time.Now().UTC()
	ip := clientIP(r, h.cfg.TrustProxy)
	ua := strings.TrimSpace(r.UserAgent())
	email := strings.TrimSpace(req.Email)

	// Unknown email and wrong password must be indistinguishable to the
	// caller: same status, same code, same message.
	u, err := h.users.GetUserByEmail(ctx, email)
	if err != nil {
		if identity.IsNotFound(err) {
			// Timing resistance: burn a verify against a dummy hash.
			if h.dummyHash != "" {
				_, _ = h.passwords.Verify(h.dummyHash, req.Password)
			}
			h.auditLoginFailed(ctx, nil, ip, ua, "not_found")
			writeInvalidCredentials(w)
			return
		}
		h.log.Error("auth.login.lookup.fail", "err", err)
		httpjson.WriteError(w, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	okPw, err := h.passwords.Verify(u.PasswordHash, req.Password)
	if err != nil || !okPw {
		if err != nil {
			h.log.Error("auth.login.verify.fail", "err", err, "user_id", u.ID)
		}
		h.auditLoginFailed(ctx, &u.ID, ip, ua, "bad_password")
		writeInvalidCredentials(w)
		return
	}

	row, err := h.sessions.Create(ctx, now, u.ID, deviceDescriptor(r))
	if err != nil {
		h.log.Error("auth.login.create_session.fail", "err", err, "user_id", u.ID)
		httpjson.WriteError(w, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	h.auditLoginSuccess(ctx, u.ID, row.ID, ip, ua)
	setSessionCookie(w, h.sessCfg, row.ID)
	httpjson.Write(w, http.StatusOK, httpjson.Success{Success: true})
}

func (h *Handler) handleSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	userID, ok := UserIDFrom(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	rows, err := h.sessions.List(r.Context(), userID)
	if err != nil {
		h.log.Error("auth.sessions.list.fail", "err", err, "user_id", userID)
		httpjson.WriteError(w, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	items := make([]sessionItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, sessionItem{
			ID:        row.ID,
			UserID:    row.UserID,
			Device:    row.Device,
			CreatedAt: row.CreatedAt,
		})
	}
	httpjson.Write(w, http.StatusOK, items)
}

func (h *Handler) handleRevoke(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	userID, ok := UserIDFrom(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var req revokeRequest
	if err := httpjson.Decode(w, r, h.cfg.MaxBodyBytes, &req); err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	ctx := r.Context()
	ip := clientIP(r, h.cfg.TrustProxy)
	ua := strings.TrimSpace(r.UserAgent())
	sessionID := strings.TrimSpace(req.SessionID)

	err := h.sessions.Revoke(ctx, sessionID, userID)
	switch err {
	case nil:
		h.auditSessionRevoked(ctx, userID, sessionID, ip, ua)
	case session.ErrNotOwned:
		// Success-shaped no-op: do not reveal whether the target exists.
		// The attempt is still recorded server-side.
		h.auditRevokeDenied(ctx, userID, ip, ua)
	default:
		h.log.Error("auth.sessions.revoke.fail", "err", err, "user_id", userID)
		httpjson.WriteError(w, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	httpjson.Write(w, http.StatusOK, httpjson.Success{Success: true})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	userID, _ := UserIDFrom(ctx)
	sessionID, ok := SessionIDFrom(ctx)
	if !ok {
		writeUnauthenticated(w)
		return
	}

	if err := h.sessions.RevokeCurrent(ctx, sessionID); err != nil {
		h.log.Error("auth.logout.fail", "err", err, "user_id", userID)
		httpjson.WriteError(w, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	h.auditLogout(ctx, userID, sessionID, clientIP(r, h.cfg.TrustProxy), strings.TrimSpace(r.UserAgent()))
	clearSessionCookie(w, h.sessCfg)
	httpjson.Write(w, http.StatusOK, httpjson.Success{Success: true})
}

func writeInvalidCredentials(w http.ResponseWriter) {
	httpjson.WriteError(w, http.StatusBadRequest, "invalid_credentials", "invalid email or password")
}
