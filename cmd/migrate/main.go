package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"bookgraph/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	loadEnvFiles()
	log := logger.Get(os.Getenv("DEBUG") == "true")

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, databaseDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	dir := migrationsDir()
	if err := migrate(db, dir, *command, *name); err != nil {
		log.Fatal().Err(err).Str("command", *command).Str("dir", dir).Msg("migration failed")
	}
	log.Info().Str("command", *command).Str("dir", dir).Msg("migration finished")
}

func migrate(db *sql.DB, dir, command, name string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		return goose.Up(db, dir)
	case "down":
		return goose.Down(db, dir)
	case "status":
		return goose.Status(db, dir)
	case "create":
		if name == "" {
			return fmt.Errorf("name is required for 'create' command")
		}
		return goose.Create(nil, dir, name, "sql")
	default:
		return fmt.Errorf("unknown command %q, use: up, down, status, create", command)
	}
}
