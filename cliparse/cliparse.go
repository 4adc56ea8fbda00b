package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// Storage driver names
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverBadger   = "badger"
)

type Config struct {
	Port          int
	StorageDriver string
	DatabaseURL   string
	AdminKey      string
}

// ParseFlags validates flags and sets defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("question-mark", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StorageDriver, "s", "", "Storage driver (sqlite, postgres or badger)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database DSN, or data directory for badger")

	// Secret (prefer env variable, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKey, "admin-key", "", "Admin dashboard key (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}

	if cfg.StorageDriver == "" {
		cfg.StorageDriver = os.Getenv("STORAGE_DRIVER")
		if cfg.StorageDriver == "" {
			cfg.StorageDriver = DriverSQLite
		}
	}
	switch cfg.StorageDriver {
	case DriverSQLite, DriverPostgres, DriverBadger:
	default:
		return Config{}, errors.New("storage driver must be sqlite, postgres or badger")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		switch cfg.StorageDriver {
		case DriverSQLite:
			cfg.DatabaseURL = "./data/question_mark.db"
		case DriverBadger:
			cfg.DatabaseURL = "./data/questions"
		default:
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	}

	// The admin key may stay empty: admin endpoints then reject everything.
	if cfg.AdminKey == "" {
		cfg.AdminKey = os.Getenv("ADMIN_DASH_KEY")
	}

	return cfg, nil
}
