package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/trivia-engine/internal/config"
	"github.com/gokatarajesh/trivia-engine/internal/db"
	"github.com/gokatarajesh/trivia-engine/internal/db/repository"
	"github.com/gokatarajesh/trivia-engine/internal/question/source"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, or seed")
		dataDir = flag.String("data", "", "Directory with the mode JSON files for seed (defaults to DATA_DIR)")
	)
	flag.Parse()

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load("configs/.env")
	}
	pg := config.Postgres{
		Host:     getEnv("PG_HOST", "localhost"),
		Port:     5432,
		User:     getEnv("PG_USER", "postgres"),
		Password: os.Getenv("PG_PASSWORD"),
		Database: getEnv("PG_DATABASE", "trivia"),
		SSLMode:  getEnv("PG_SSL_MODE", "disable"),
	}
	if port := os.Getenv("PG_PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			log.Fatal().Err(err).Str("port", port).Msg("invalid PG_PORT")
		}
		pg.Port = n
	}

	if *command == "seed" {
		dir := *dataDir
		if dir == "" {
			dir = getEnv("DATA_DIR", "data/json")
		}
		if err := seed(pg.DSN(), dir); err != nil {
			log.Fatal().Err(err).Msg("seed failed")
		}
		return
	}

	sqlDB, err := sql.Open("pgx", pg.DSN())
	if err != nil {
		log.Fatal().Err(err).Str("host", pg.Host).Msg("failed to open database connection")
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}

	log.Info().
		Str("host", pg.Host).
		Int("port", pg.Port).
		Str("database", pg.Database).
		Msg("connected to database")

	goose.SetBaseFS(db.Migrations)
	goose.SetTableName("goose_db_version")
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("failed to set goose dialect")
	}

	switch *command {
	case "up":
		if err := goose.Up(sqlDB, db.MigrationsDir); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations up")
		}
		log.Info().Msg("migrations applied successfully")

	case "down":
		if err := goose.Down(sqlDB, db.MigrationsDir); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations down")
		}
		log.Info().Msg("migrations rolled back successfully")

	case "status":
		if err := goose.Status(sqlDB, db.MigrationsDir); err != nil {
			log.Fatal().Err(err).Msg("failed to get migration status")
		}

	default:
		log.Fatal().Str("command", *command).Msg("unknown command. Use: up, down, status, or seed")
	}
}

// seed copies the JSON catalog in dir into the question tables.
func seed(dsn, dir string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	catalog, err := source.NewFileLoader(os.DirFS(dir), log.Logger).Load(ctx)
	if err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return err
	}
	defer pool.Close()

	n, err := source.Seed(ctx, repository.NewItemRepository(repository.NewPgStore(pool)), catalog)
	if err != nil {
		return err
	}
	log.Info().Int("items", n).Str("dir", dir).Msg("question tables seeded")
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
