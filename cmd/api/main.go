package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"bookgraph/internal/catalog"
	"bookgraph/internal/config"
	"bookgraph/internal/graph"
	"bookgraph/internal/logger"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Read(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := logger.Get(cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	src, closeSource, err := newSource(ctx, cfg, log)
	if err != nil {
		return err
	}
	books, err := catalog.Load(ctx, src, log)
	closeSource()
	if err != nil {
		return err
	}

	schema, err := graph.NewSchema(books, graph.Options{
		MaxParallelism: cfg.MaxParallelism,
		Logger:         log,
	})
	if err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	}

	var ready atomic.Bool
	httpServer := &http.Server{
		Handler:      newRouter(ctx, cfg, log, books, graph.Handler(schema), &ready),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	group, gCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		ready.Store(true)
		log.Info().Str("url", readyURL(ln.Addr())).Msg("server ready")
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-gCtx.Done()
		ready.Store(false)
		log.Debug().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return group.Wait()
}

func readyURL(addr net.Addr) string {
	return fmt.Sprintf("http://%s/query", addr.String())
}
