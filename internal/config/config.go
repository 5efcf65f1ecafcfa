package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

type (
	Config struct {
		HTTP
		Store
		Auth
		Catalog
		Log
	}

	HTTP struct {
		GinMode         string
		Port            int
		ShutdownTimeout time.Duration
	}
	Store struct {
		Driver string
		TZ     string

		DBHost    string
		DBPort    string
		DBUser    string
		DBPass    string
		DBName    string
		DBSSLMode string

		SQLitePath string

		MongoURL      string
		MongoDatabase string
	}
	Auth struct {
		AdminUsername string
		AdminPassword string
		JWTSecret     string
		JWTExpiration time.Duration
		SecureCookies bool
	}
	Catalog struct {
		// FilteredTotals makes listing totals follow the active filter.
		FilteredTotals bool
	}
	Log struct {
		Level  string
		Format string
	}
)

// Load reads configuration from the environment. In debug mode a .env file
// in the working directory or any parent is loaded first; variables already
// set in the environment win.
func Load() *Config {
	if getenv("GIN_MODE", "debug") == "debug" {
		loadDotEnv(".env")
	}
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("gin_mode", "debug")
	v.SetDefault("port", 8080)
	v.SetDefault("shutdown_timeout", "10s")

	v.SetDefault("store_driver", DriverPostgres)
	v.SetDefault("tz", "UTC")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_pass", "")
	v.SetDefault("db_name", "postgres")
	v.SetDefault("db_sslmode", "")
	v.SetDefault("sqlite_path", "bookify.db")
	v.SetDefault("mongo_url", "mongodb://localhost:27017")
	v.SetDefault("mongo_database", "bookify")

	// USN and PASS are the legacy names for the admin credentials.
	_ = v.BindEnv("admin_username", "ADMIN_USERNAME", "USN")
	_ = v.BindEnv("admin_password", "ADMIN_PASSWORD", "PASS")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_expiration", "24h")
	v.SetDefault("secure_cookies", false)

	v.SetDefault("catalog_filtered_totals", false)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	return v
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		HTTP: HTTP{
			GinMode:         v.GetString("GIN_MODE"),
			Port:            v.GetInt("PORT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Store: Store{
			Driver:        strings.ToLower(v.GetString("STORE_DRIVER")),
			TZ:            v.GetString("TZ"),
			DBHost:        v.GetString("DB_HOST"),
			DBPort:        v.GetString("DB_PORT"),
			DBUser:        v.GetString("DB_USER"),
			DBPass:        v.GetString("DB_PASS"),
			DBName:        v.GetString("DB_NAME"),
			DBSSLMode:     v.GetString("DB_SSLMODE"),
			SQLitePath:    v.GetString("SQLITE_PATH"),
			MongoURL:      v.GetString("MONGO_URL"),
			MongoDatabase: v.GetString("MONGO_DATABASE"),
		},
		Auth: Auth{
			AdminUsername: v.GetString("admin_username"),
			AdminPassword: v.GetString("admin_password"),
			JWTSecret:     v.GetString("JWT_SECRET"),
			JWTExpiration: v.GetDuration("JWT_EXPIRATION"),
			SecureCookies: v.GetBool("SECURE_COOKIES"),
		},
		Catalog: Catalog{
			FilteredTotals: v.GetBool("CATALOG_FILTERED_TOTALS"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	return cfg
}

// Validate reports configuration the server cannot start with.
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres, DriverSQLite, DriverMongo:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Driver)
	}

	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if c.JWTExpiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION must be positive, got %s", c.JWTExpiration)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

func findEnvFile(name string) (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func loadDotEnv(name string) {
	path, ok := findEnvFile(name)
	if !ok {
		return
	}

	if err := godotenv.Load(path); err != nil {
		log.Printf("warning: could not load %s: %v", path, err)
		return
	}
	log.Printf("loaded %s", path)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
