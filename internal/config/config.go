package config

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"

	RateLimitMemory = "memory"
	RateLimitRedis  = "redis"
)

type Config struct {
	ServerPort string `env:"SERVER_PORT, default=8080"`
	Env        string `env:"APP_ENV, default=development"`
	LogLevel   string `env:"LOG_LEVEL, default=info"`

	DBDialect  string `env:"DB_DIALECT, default=postgres"`
	DBUrl      string `env:"DATABASE_URL"`
	SQLitePath string `env:"SQLITE_PATH, default=database.sqlite"`

	JWTSecret string        `env:"JWT_SECRET, default=changeme"`
	JWTIssuer string        `env:"JWT_ISSUER, default=order-desk"`
	JWTTTL    time.Duration `env:"JWT_TTL, default=24h"`

	AdminMasterKey string `env:"ADMIN_MASTER_KEY"`

	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:5173"`
	Timezone    string `env:"BUSINESS_TIMEZONE, default=America/Sao_Paulo"`

	// TrustedProxies lists the proxy IPs or CIDRs whose X-Forwarded-For is
	// believed. Empty means the socket peer is the caller.
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	HTTPReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT, default=15s"`
	HTTPWriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT, default=30s"`

	LoginRateLimit  int           `env:"LOGIN_RATE_LIMIT, default=5"`
	LoginRateWindow time.Duration `env:"LOGIN_RATE_WINDOW, default=15m"`
	RateLimitStore  string        `env:"RATE_LIMIT_BACKEND, default=memory"`

	Redis  RedisConfig
	Report ReportConfig
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// ReportConfig points CSV exports at an S3-compatible bucket. Archiving is
// off while Bucket is empty.
type ReportConfig struct {
	Bucket    string `env:"REPORT_BUCKET"`
	Region    string `env:"REPORT_REGION, default=us-east-1"`
	Endpoint  string `env:"REPORT_ENDPOINT"`
	AccessKey string `env:"REPORT_ACCESS_KEY"`
	SecretKey string `env:"REPORT_SECRET_KEY"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return LoadFrom(context.Background(), envconfig.OsLookuper())
}

// LoadFrom processes configuration from an arbitrary lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.DBDialect = strings.ToLower(strings.TrimSpace(cfg.DBDialect))
	cfg.RateLimitStore = strings.ToLower(strings.TrimSpace(cfg.RateLimitStore))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.DBDialect {
	case DialectPostgres:
		if c.DBUrl == "" {
			return errors.New("config: DATABASE_URL is required for postgres")
		}
	case DialectSQLite:
		if c.IsProduction() {
			return errors.New("config: sqlite is not allowed in production")
		}
	default:
		return fmt.Errorf("config: unknown DB_DIALECT %q", c.DBDialect)
	}

	switch c.RateLimitStore {
	case RateLimitMemory, RateLimitRedis:
	default:
		return fmt.Errorf("config: unknown RATE_LIMIT_BACKEND %q", c.RateLimitStore)
	}

	if c.IsProduction() && (c.JWTSecret == "" || c.JWTSecret == "changeme") {
		return errors.New("config: JWT_SECRET must be set in production")
	}
	for _, p := range c.TrustedProxies {
		if !validProxy(p) {
			return fmt.Errorf("config: invalid TRUSTED_PROXIES entry %q", p)
		}
	}
	if c.LoginRateLimit <= 0 || c.LoginRateWindow <= 0 {
		return errors.New("config: login rate limit must be positive")
	}
	return nil
}

func validProxy(p string) bool {
	if strings.Contains(p, "/") {
		_, _, err := net.ParseCIDR(p)
		return err == nil
	}
	return net.ParseIP(p) != nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// AllowedOrigins splits FRONTEND_URL on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, part := range strings.Split(c.FrontendURL, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
