// Command sync runs one backup cycle of the local mirror against a QuizGen
// server.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/quizgen/quizgen/internal/client/localstore"
	"github.com/quizgen/quizgen/internal/logging"
)

func main() {
	logging.Setup()

	dbPath := flag.String("db", "quizgen_local.db", "path to the local mirror database")
	server := flag.String("server", "http://localhost:4000", "QuizGen server URL")
	token := flag.String("token", "", "bearer token to store before syncing")
	flag.Parse()

	ctx := context.Background()

	store, err := localstore.Open(ctx, *dbPath)
	if err != nil {
		slog.Error("failed to open local store", "error", err, "path", *dbPath)
		os.Exit(1)
	}
	defer store.Close()

	if *token != "" {
		if err := store.Prefs().Set(ctx, localstore.TokenKey, *token); err != nil {
			slog.Error("failed to store token", "error", err)
			os.Exit(1)
		}
	}

	if err := store.BackupToServer(ctx, *server); err != nil {
		slog.Error("backup failed", "error", err, "server", *server)
		os.Exit(1)
	}

	slog.Info("backup completed", "server", *server)
}
