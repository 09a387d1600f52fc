package todo

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	authapi "taskd/cmd/internal/auth/api"
	"taskd/cmd/internal/httpjson"

	"github.com/oklog/ulid/v2"
)

const maxTitleLength = 500

// Handler serves the todo CRUD endpoints. All routes are registered behind
// the session gate, so requests arrive with an authenticated user id in
// context.
type Handler struct {
	log   *slog.Logger
	store Store
}

// NewHandler constructs a todo Handler over the given store.
func NewHandler(log *slog.Logger, store Store) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{log: log, store: store}
}

// Register wires todo routes onto the mux, each wrapped by gate.
func (h *Handler) Register(mux *http.ServeMux, gate func(http.Handler) http.Handler) {
	if h == nil || mux == nil || gate == nil {
		return
	}
	mux.Handle("/todos", gate(http.HandlerFunc(h.handleTodos)))
	mux.Handle("/todos/update", gate(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/todos/delete", gate(http.HandlerFunc(h.handleDelete)))
}

type createRequest struct {
	Title string `json:"title"`
}

type updateRequest struct {
	ID    string  `json:"id"`
	Title *string `json:"title"`
	Done  *bool   `json:"done"`
}

type deleteRequest struct {
	ID string `json:"id"`
}

type todoItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toItem(t Todo) todoItem {
	return todoItem{
		ID:        t.ID,
		Title:     t.Title,
		Done:      t.Done,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (h *Handler) handleTodos(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := authapi.UserIDFrom(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	todos, err := h.store.ListByUser(r.Context(), userID)
	if err != nil {
		h.log.Error("todo.list.fail", "err", err, "user_id", userID)
		httpjson.WriteError(w, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	items := make([]todoItem, 0, len(todos))
	for _, t := range todos {
		items = append(items, toItem(t))
	}
	httpjson.Write(w, http.StatusOK, items)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := authapi.UserIDFrom(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var req createRequest
	if err := httpjson.Decode(w, r, httpjson.DefaultMaxBodyBytes, &req); err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" || len(title) > maxTitleLength {
		httpjson.WriteError(w, http.StatusBadRequest, "validation_error", "title is required")
		return
	}

	now := time.Now().UTC()
	t := Todo{
		ID:        ulid.Make().String(),
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.store.Create(r.Context(), t); err != nil {
		h.log.Error("todo.create.fail", "err", err, "user_id", userID)
		httpjson.WriteError(w, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	httpjson.Write(w, http.StatusOK, toItem(t))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	userID, ok := authapi.UserIDFrom(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var req updateRequest
	if err := httpjson.Decode(w, r, httpjson.DefaultMaxBodyBytes, &req); err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	id := strings.TrimSpace(req.ID)
	if id == "" || (req.Title == nil && req.Done == nil) {
		httpjson.WriteError(w, http.StatusBadRequest, "validation_error", "id and at least one field are required")
		return
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" || len(title) > maxTitleLength {
			httpjson.WriteError(w, http.StatusBadRequest, "validation_error", "title must be non-empty")
			return
		}
		req.Title = &title
	}

	t, err := h.store.UpdateOwned(r.Context(), UpdateInput{
		ID:     id,
		UserID: userID,
		Title:  req.Title,
		Done:   req.Done,
		Now:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpjson.WriteError(w, http.StatusNotFound, "not_found", "todo not found")
			return
		}
		h.log.Error("todo.update.fail", "err", err, "user_id", userID)
		httpjson.WriteError(w, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	httpjson.Write(w, http.StatusOK, toItem(t))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	userID, ok := authapi.UserIDFrom(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	var req deleteRequest
	if err := httpjson.Decode(w, r, httpjson.DefaultMaxBodyBytes, &req); err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}
	id := strings.TrimSpace(req.ID)
	if id == "" {
		httpjson.WriteError(w, http.StatusBadRequest, "validation_error", "id is required")
		return
	}

	if err := h.store.DeleteOwned(r.Context(), id, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpjson.WriteError(w, http.StatusNotFound, "not_found", "todo not found")
			return
		}
		h.log.Error("todo.delete.fail", "err", err, "user_id", userID)
		httpjson.WriteError(w, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	httpjson.Write(w, http.StatusOK, httpjson.Success{Success: true})
}

func writeUnauthenticated(w http.ResponseWriter) {
	httpjson.WriteError(w, http.StatusUnauthorized, "unauthenticated", "authentication required")
}
