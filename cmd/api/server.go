package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"bookgraph/internal/catalog"
	"bookgraph/internal/config"
	"bookgraph/internal/httpx"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// newSource picks the catalog source named by the configuration. The returned
// close function releases whatever the source holds once loading is done.
func newSource(ctx context.Context, cfg *config.Config, log zerolog.Logger) (catalog.Source, func(), error) {
	noop := func() {}
	switch cfg.CatalogSource {
	case config.SourceEmbedded:
		return catalog.EmbeddedSource(), noop, nil
	case config.SourceFile:
		log.Debug().Str("path", cfg.CatalogFile).Msg("reading catalog file")
		return catalog.FileSource(cfg.CatalogFile), noop, nil
	case config.SourcePostgres:
		pool, err := openDB(ctx, cfg.DBDsn)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Msg("database connection OK")
		return catalog.NewPostgresSource(pool), pool.Close, nil
	default:
		return nil, noop, fmt.Errorf("%w: %q", catalog.ErrNoSource, cfg.CatalogSource)
	}
}

func openDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database (%s): %w", redactDSN(dsn), err)
	}
	return pool, nil
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}

// newRouter mounts the query endpoint and the health checks. /readyz answers
// 503 until ready is set.
func newRouter(ctx context.Context, cfg *config.Config, log zerolog.Logger, books *catalog.Catalog, query http.Handler, ready *atomic.Bool) http.Handler {
	limiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustedProxies)

	router := http.NewServeMux()
	router.HandleFunc("GET /healthz", httpx.HealthHandler)
	router.HandleFunc("GET /readyz", httpx.ReadyHandler(ready.Load, books.Len))
	router.Handle("/query", httpx.Chain(query,
		methodOnly(http.MethodPost),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		limiter.Middleware,
	))

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware(log),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
	)
}

func methodOnly(method string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				w.Header().Set("Allow", method)
				httpx.JSONError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Use "+method)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
