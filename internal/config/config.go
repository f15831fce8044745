package config

import (
	"cmp"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultHost           = ""
	defaultPort           = 3000
	defaultSource         = SourceEmbedded
	defaultRateLimitRPS   = 20
	defaultRateLimitBurst = 40
	defaultMaxBodyBytes   = 1 << 20
	defaultParallelism    = 10
)

const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Host           string   `validate:"omitempty,hostname|ip"`
	Port           int      `validate:"gte=0,lte=65535"`
	CatalogSource  string   `validate:"required,oneof=embedded file postgres"`
	CatalogFile    string   `validate:"required_if=CatalogSource file"`
	DBDsn          string   `validate:"required_if=CatalogSource postgres"`
	AllowedOrigins []string `validate:"dive,required"`
	TrustedProxies []string `validate:"dive,ip"`
	RateLimitRPS   float64  `validate:"gt=0"`
	RateLimitBurst int      `validate:"gte=1"`
	MaxBodyBytes   int64    `validate:"gte=1"`
	MaxParallelism int      `validate:"gte=1"`
	Debug          bool
	EnableHSTS     bool
}

// Addr is the listen address. An empty host listens on every interface and
// port 0 asks the kernel for a free port.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// LoadEnvFiles reads .env and .env.local. Variables already present in the
// environment win.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Read parses flags from args, then applies environment overrides and
// validates the result.
func Read(args []string) (*Config, error) {
	fs := flag.NewFlagSet("bookgraph", flag.ContinueOnError)

	var cfg Config
	var origins, proxies string
	fs.StringVar(&cfg.Host, "host", defaultHost, "server host")
	fs.IntVar(&cfg.Port, "port", defaultPort, "server port")
	fs.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")
	fs.StringVar(&cfg.CatalogSource, "source", defaultSource, "catalog source: embedded, file or postgres")
	fs.StringVar(&cfg.CatalogFile, "catalog", "", "path to a JSON catalog when -source=file")
	fs.StringVar(&cfg.DBDsn, "db", "", "postgres DSN when -source=postgres")
	fs.StringVar(&origins, "cors", "", "comma separated list of allowed CORS origins")
	fs.StringVar(&proxies, "trusted-proxies", "", "comma separated proxy IPs whose X-Forwarded-For is honored")
	fs.Float64Var(&cfg.RateLimitRPS, "rps", defaultRateLimitRPS, "requests per second per client")
	fs.IntVar(&cfg.RateLimitBurst, "burst", defaultRateLimitBurst, "rate limiter burst")
	fs.Int64Var(&cfg.MaxBodyBytes, "max-body", defaultMaxBodyBytes, "maximum request body size in bytes")
	fs.IntVar(&cfg.MaxParallelism, "parallelism", defaultParallelism, "maximum parallel field resolution")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Host = cmp.Or(os.Getenv("APP_HOST"), cfg.Host)
	cfg.CatalogSource = cmp.Or(os.Getenv("CATALOG_SOURCE"), cfg.CatalogSource)
	cfg.CatalogFile = cmp.Or(os.Getenv("CATALOG_FILE"), cfg.CatalogFile)
	cfg.DBDsn = cmp.Or(os.Getenv("DB_DSN"), cfg.DBDsn)
	origins = cmp.Or(os.Getenv("CORS_ALLOWED_ORIGINS"), origins)
	cfg.AllowedOrigins = splitList(origins)
	proxies = cmp.Or(os.Getenv("TRUSTED_PROXIES"), proxies)
	cfg.TrustedProxies = splitList(proxies)
	cfg.EnableHSTS = os.Getenv("ENABLE_HSTS") == "true"

	var err error
	if cfg.Port, err = envInt("APP_PORT", cfg.Port); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = envInt("RATE_LIMIT_BURST", cfg.RateLimitBurst); err != nil {
		return nil, err
	}
	if cfg.MaxParallelism, err = envInt("GRAPHQL_MAX_PARALLELISM", cfg.MaxParallelism); err != nil {
		return nil, err
	}
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		if cfg.MaxBodyBytes, err = strconv.ParseInt(v, 10, 64); err != nil {
			return nil, fmt.Errorf("MAX_BODY_BYTES: %w", err)
		}
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if cfg.RateLimitRPS, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
		}
	}
	if v := os.Getenv("DEBUG"); v != "" {
		if cfg.Debug, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("DEBUG: %w", err)
		}
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
