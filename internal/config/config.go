package config

import (
	"errors"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultAddress      = ":9090"
	defaultTimeout      = 30
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	defaultCORSOrigin   = "*"
)

// Config holds everything the server needs at startup.
type Config struct {
	ServerAddress     string
	ContextTimeout    time.Duration
	JWTSecret         string
	CORSAllowedOrigin string
	BloomFilterSize   uint64
	LogLevel          string
	LogFormat         string

	Database Database
	Cache    Cache
}

type Database struct {
	Host        string
	Port        string
	User        string
	Pass        string
	Name        string
	AutoMigrate bool
}

// DSN returns the go-sql-driver data source name. Times are parsed in UTC and
// UPDATE reports matched rows, so a soft delete of an already deleted row
// still counts as found.
func (d Database) DSN() string {
	cfg := mysqldriver.NewConfig()
	cfg.User = d.User
	cfg.Passwd = d.Pass
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(d.Host, d.Port)
	cfg.DBName = d.Name
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.ClientFoundRows = true
	return cfg.FormatDSN()
}

type Cache struct {
	Host string
	Port string
	Pass string
	DB   int
}

func (c Cache) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Load reads .env (if any) and the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Warnf("no .env file loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		ServerAddress:     stringOr("SERVER_ADDRESS", defaultAddress),
		ContextTimeout:    time.Duration(intOr("CONTEXT_TIMEOUT", defaultTimeout)) * time.Second,
		JWTSecret:         os.Getenv("JWT_SECRET"),
		CORSAllowedOrigin: stringOr("CORS_ALLOWED_ORIGIN", defaultCORSOrigin),
		BloomFilterSize:   uint64Or("BLOOM_FILTER_SIZE", defaultBloomBitSize),
		LogLevel:          stringOr("LOG_LEVEL", logrus.InfoLevel.String()),
		LogFormat:         os.Getenv("LOG_FORMAT"),
		Database: Database{
			Host:        os.Getenv("DATABASE_HOST"),
			Port:        os.Getenv("DATABASE_PORT"),
			User:        os.Getenv("DATABASE_USER"),
			Pass:        os.Getenv("DATABASE_PASS"),
			Name:        os.Getenv("DATABASE_NAME"),
			AutoMigrate: boolOr("DATABASE_AUTO_MIGRATE", false),
		},
		Cache: Cache{
			Host: os.Getenv("CACHE_HOST"),
			Port: os.Getenv("CACHE_PORT"),
			Pass: os.Getenv("CACHE_PASS"),
			DB:   intOr("CACHE_DB", defaultCacheDB),
		},
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

// SetupLogger applies LOG_LEVEL and LOG_FORMAT to the logrus standard logger.
func (c Config) SetupLogger() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", c.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if strings.EqualFold(c.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func stringOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intOr(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		if os.Getenv(key) != "" {
			logrus.Warnf("failed to parse %s, using default %d", key, def)
		}
		return def
	}
	return v
}

func uint64Or(key string, def uint64) uint64 {
	v, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil || v == 0 {
		if os.Getenv(key) != "" {
			logrus.Warnf("failed to parse %s, using default %d", key, def)
		}
		return def
	}
	return v
}

func boolOr(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
