package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskd/cmd/identity"
	authapi "taskd/cmd/internal/auth/api"
	"taskd/cmd/internal/auth/session"
	"taskd/cmd/internal/todo"
	"taskd/cmd/security/password"

	"golang.org/x/crypto/bcrypt"
)

// newMemoryMux wires the full route table the way App.Run does, in
// in-memory store mode.
func newMemoryMux(t *testing.T) *http.ServeMux {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := LoadConfig()

	pwCfg := password.Config{Cost: bcrypt.MinCost, Policy: password.Policy{MinLength: 1, MaxLength: 72}}
	sessCfg := session.DefaultConfig()
	sessions := session.NewService(sessCfg, session.NewMemoryStore())
	auth := authapi.NewHandler(log, authapi.LoadConfigFromEnv(), sessCfg, pwCfg, identity.NewMemoryStore(), sessions, nil)
	todos := todo.NewHandler(log, todo.NewMemoryStore())

	mux := http.NewServeMux()
	registerHTTP(mux, log, cfg, nil, false, auth, todos)
	return mux
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	mux := newMemoryMux(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK || rr.Body.String() != "ok\n" {
		t.Fatalf("healthz: status=%d body=%q", rr.Code, rr.Body.String())
	}
}

func TestReadyz_InMemoryMode(t *testing.T) {
	t.Parallel()

	mux := newMemoryMux(t)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("readyz without DB requirement: status=%d", rr.Code)
	}
}

func TestReadyz_RequireDBWithoutDB(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := Config{ReadinessRequireDB: true}

	mux := http.NewServeMux()
	registerHTTP(mux, log, cfg, nil, false, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}

func TestFullFlow_SignupLoginTodoLogout(t *testing.T) {
	t.Parallel()

	mux := newMemoryMux(t)

	do := func(method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
		var rd io.Reader
		if body != "" {
			rd = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, path, rd)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)
		return rr
	}

	if rr := do(http.MethodPost, "/signup", `{"email":"a@x.com","password":"pw1"}`, nil); rr.Code != http.StatusOK {
		t.Fatalf("signup: %d %s", rr.Code, rr.Body.String())
	}

	login := do(http.MethodPost, "/login", `{"email":"a@x.com","password":"pw1"}`, nil)
	if login.Code != http.StatusOK {
		t.Fatalf("login: %d %s", login.Code, login.Body.String())
	}
	var cookie *http.Cookie
	for _, c := range login.Result().Cookies() {
		if c.Name == "taskd_session" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("login did not set a session cookie")
	}

	if rr := do(http.MethodPost, "/todos", `{"title":"wired end to end"}`, cookie); rr.Code != http.StatusOK {
		t.Fatalf("create todo: %d %s", rr.Code, rr.Body.String())
	}
	if rr := do(http.MethodGet, "/todos", "", cookie); rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "wired end to end") {
		t.Fatalf("list todos: %d %s", rr.Code, rr.Body.String())
	}

	if rr := do(http.MethodPost, "/logout", "", cookie); rr.Code != http.StatusOK {
		t.Fatalf("logout: %d %s", rr.Code, rr.Body.String())
	}
	if rr := do(http.MethodGet, "/todos", "", cookie); rr.Code != http.StatusUnauthorized {
		t.Fatalf("post-logout access: expected 401, got %d", rr.Code)
	}
}
