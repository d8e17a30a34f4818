package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/polls/db"
)

const (
	DefaultPort        = 8000
	DefaultDatabaseURL = "db.sqlite3"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	AdminKeySalt  string
	EnvFile       string
	Migrate       bool
	Debug         bool
	PrintAdminKey bool
}

// Dialect returns the parsed DatabaseType
func (c Config) Dialect() (db.Dialect, error) {
	return db.ParseDialect(c.DatabaseType)
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("polls", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")

	fs.StringVar(&cfg.EnvFile, "env-file", ".env", "Dotenv file to load, ignored if missing")
	fs.BoolVar(&cfg.Migrate, "migrate", false, "Create the polls tables before serving")
	fs.BoolVar(&cfg.Debug, "debug", false, "Mount the SQL console under /debug/tailsql/")
	fs.BoolVar(&cfg.PrintAdminKey, "print-admin-key", false, "Print the debug admin key and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Values already in the environment win over the dotenv file
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
		}
	}

	var result *multierror.Error

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				result = multierror.Append(result, errors.New("invalid PORT env variable"))
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		result = multierror.Append(result, fmt.Errorf("port %d out of range", cfg.Port))
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = DefaultDatabaseURL
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = string(db.SQLite)
		}
	}
	if _, err := cfg.Dialect(); err != nil {
		result = multierror.Append(result, err)
	}

	// Optional; debug routes are disabled without it
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if (cfg.Debug || cfg.PrintAdminKey) && cfg.AdminKeySalt == "" {
		result = multierror.Append(result, errors.New("ADMIN_KEY_SALT required for -debug and -print-admin-key"))
	}

	if err := result.ErrorOrNil(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
