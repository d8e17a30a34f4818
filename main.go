package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/polls/auth"
	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/router"
)

// startupTimeout bounds connecting, migrating and reflecting
const startupTimeout = 30 * time.Second

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.PrintAdminKey {
		fmt.Println(auth.GenerateAdminKey(auth.ScopeDebug, cfg.AdminKeySalt))
		return
	}

	dialect, err := cfg.Dialect()
	if err != nil {
		slog.Error("invalid database type", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	// Connect and verify
	conn, err := db.Connect(ctx, dialect, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if cfg.Migrate {
		if err := db.MigrateUp(conn, dialect); err != nil {
			conn.Close()
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
	}

	// Reflect schema
	store, err := db.New(ctx, conn, dialect)
	if err != nil {
		conn.Close()
		slog.Error("schema reflection failed", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Schema().Require(models.TableUser, models.TableQuestion, models.TableChoice); err != nil {
		slog.Error("schema is missing polls tables (run with -migrate on a fresh database)", "error", err)
		store.Close()
		os.Exit(1)
	}
	slog.Info("Database schema ready", "tables", len(store.Schema().TableNames()))

	// Create router
	mux := router.NewRouter(store, cfg)
	if cfg.Debug {
		if err := router.AttachSQLConsole(mux, store, cfg); err != nil {
			slog.Error("debug console setup failed", "error", err)
			store.Close()
			os.Exit(1)
		}
		slog.Info("SQL console mounted", "path", router.ConsolePrefix)
	}

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "dialect", dialect)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
