package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/stemsi/schedule-bot/internal/config"
	"github.com/stemsi/schedule-bot/internal/database"
	"github.com/stemsi/schedule-bot/internal/logger"
	"github.com/stemsi/schedule-bot/internal/repository"
)

func main() {
	var (
		id     int64
		revoke bool
	)
	flag.Int64Var(&id, "id", 0, "Telegram user id")
	flag.BoolVar(&revoke, "revoke", false, "Remove admin rights instead of granting them")
	flag.Parse()

	if id <= 0 {
		fmt.Fprintln(os.Stderr, "Usage: grant-admin -id <telegram user id> [-revoke]")
		os.Exit(2)
	}

	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)

	if err := userRepo.SetAdmin(ctx, id, !revoke); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			fmt.Fprintf(os.Stderr, "User %d not found. They must message the bot first.\n", id)
			os.Exit(1)
		}
		log.Fatal().Err(err).Int64("user_id", id).Msg("Failed to update admin flag")
	}

	if revoke {
		fmt.Printf("User %d is no longer an admin.\n", id)
	} else {
		fmt.Printf("User %d is now an admin.\n", id)
	}
}
