package app

import (
	"context"
	"os/signal"
	"syscall"
)

// Run is the process entrypoint behind cmd/taskd. It assembles the runtime
// from the environment and blocks until SIGINT/SIGTERM or a fatal server
// error; errors bubble up instead of os.Exit so deferred cleanup still runs.
func Run() error {
	cfg := LoadConfig()
	log := NewLogger(cfg.LogLevel)
	log.Info("taskd.boot",
		"http_addr", cfg.HTTPAddr,
		"db_configured", cfg.DatabaseURL != "",
		"migrate_on_start", cfg.MigrateOnStart,
	)

	a, err := New(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.Run(ctx)
}
