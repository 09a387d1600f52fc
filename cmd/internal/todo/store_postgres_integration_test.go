package todo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
)

func setupIntegration(t *testing.T) (*pgxpool.Pool, int64) {
	t.Helper()

	dbURL := os.Getenv("TASKD_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TASKD_DATABASE_URL is not set; skipping Postgres integration test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Skipf("postgres unavailable: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("postgres unreachable: %v", err)
	}
	t.Cleanup(pool.Close)

	email := fmt.Sprintf("todo-it-%d@test.local", time.Now().UnixNano())
	var userID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO taskd.users (email, password_hash, created_at)
		VALUES ($1, 'test-hash', now())
		RETURNING id
	`, email).Scan(&userID)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() {
		// Todos cascade with the user row.
		_, _ = pool.Exec(context.Background(), `DELETE FROM taskd.users WHERE id = $1`, userID)
	})

	return pool, userID
}

func TestPostgresTodos_CRUD(t *testing.T) {
	t.Parallel()

	pool, userID := setupIntegration(t)
	ctx := context.Background()
	store := NewPostgresStore(pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	item := Todo{
		ID:        ulid.Make().String(),
		UserID:    userID,
		Title:     "integration task",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.Create(ctx, item); err != nil {
		t.Fatalf("Create: %v", err)
	}

	todos, err := store.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(todos) != 1 || todos[0].Title != "integration task" || todos[0].Done {
		t.Fatalf("unexpected list: %+v", todos)
	}

	done := true
	updated, err := store.UpdateOwned(ctx, UpdateInput{
		ID:     item.ID,
		UserID: userID,
		Done:   &done,
		Now:    now.Add(time.Second),
	})
	if err != nil {
		t.Fatalf("UpdateOwned: %v", err)
	}
	if !updated.Done || updated.Title != "integration task" {
		t.Fatalf("partial update went wrong: %+v", updated)
	}

	// Wrong owner never matches.
	if _, err := store.UpdateOwned(ctx, UpdateInput{ID: item.ID, UserID: userID + 1, Done: &done, Now: now}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for foreign update, got %v", err)
	}
	if err := store.DeleteOwned(ctx, item.ID, userID+1); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for foreign delete, got %v", err)
	}

	if err := store.DeleteOwned(ctx, item.ID, userID); err != nil {
		t.Fatalf("DeleteOwned: %v", err)
	}
	if err := store.DeleteOwned(ctx, item.ID, userID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
