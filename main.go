package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/question-mark/cliparse"
	"github.com/danielhkuo/question-mark/db"
	"github.com/danielhkuo/question-mark/middleware"
	"github.com/danielhkuo/question-mark/router"
	"github.com/danielhkuo/question-mark/store"
)

func main() {
	// Load .env if present (deployment uses real env variables)
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.AdminKey == "" {
		slog.Warn("ADMIN_DASH_KEY not set, admin endpoints will reject all requests")
	}

	// Open the configured storage backend
	st, err := openStore(cfg)
	if err != nil {
		slog.Error("storage initialization failed", "error", err, "driver", cfg.StorageDriver)
		os.Exit(1)
	}
	defer st.Close()
	slog.Info("Storage ready", "driver", cfg.StorageDriver)

	// Create router
	mux := router.NewRouter(st, cfg)

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
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openStore opens the backend selected by config: a SQL database (sqlite or
// postgres) or a badger key-value directory.
func openStore(cfg cliparse.Config) (store.Store, error) {
	switch cfg.StorageDriver {
	case cliparse.DriverBadger:
		return store.OpenBlob(cfg.DatabaseURL)

	case cliparse.DriverSQLite:
		if dir := filepath.Dir(cfg.DatabaseURL); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		return openSQL("sqlite", cfg)

	default:
		return openSQL("postgres", cfg)
	}
}

func openSQL(driver string, cfg cliparse.Config) (store.Store, error) {
	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}

	// Create schema (tables)
	if err := db.CreateSchema(conn, driver); err != nil {
		conn.Close()
		return nil, err
	}

	return store.NewSQLStore(conn), nil
}
