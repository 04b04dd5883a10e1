package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/teamboard/teamboard/internal/api"
	"github.com/teamboard/teamboard/internal/cli"
	"github.com/teamboard/teamboard/internal/db"
	"github.com/teamboard/teamboard/internal/domain"
	"github.com/teamboard/teamboard/internal/repository"
	"github.com/teamboard/teamboard/internal/session"
	"github.com/teamboard/teamboard/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dbPath, err := db.DefaultPath()
	if err != nil {
		return err
	}
	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	sess := session.NewStore(repository.NewSQLiteCredentialRepo(database))

	cfg := api.LoadConfig()
	var observer api.Observer = api.NoopObserver{}
	if cfg.LogCalls {
		observer = api.NewLogObserver(os.Stderr)
	}
	client := api.NewClient(cfg, sess, observer)
	sess.Bind(client)

	cache := store.New(client, os.Stderr)
	sess.Subscribe(func(u *domain.User) {
		// Cached projects belong to the session that fetched them.
		if u == nil {
			cache.Reset()
		}
	})

	app := &cli.App{
		API:     client,
		Store:   cache,
		Session: sess,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Pick up a persisted token from a previous login, if still valid.
	if err := sess.Restore(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: session restore failed: %v\n", err)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
