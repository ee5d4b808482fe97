package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/Usuarios-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Usuarios-api/pkg/config"
	"github.com/jhoicas/Usuarios-api/pkg/logger"
)

const usage = "uso: migrate [up|down|status]"

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	db, err := postgres.OpenDB(cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base de datos")
	}
	defer db.Close()

	ctx := context.Background()
	switch cmd {
	case "up":
		err = postgres.Migrate(ctx, db)
	case "down":
		err = postgres.Rollback(ctx, db)
	case "status":
		err = postgres.Status(ctx, db)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Str("cmd", cmd).Msg("migración fallida")
		os.Exit(1)
	}
	log.Info().Str("cmd", cmd).Msg("migración completada")
}
