package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Usuarios-api/docs"
	"github.com/jhoicas/Usuarios-api/internal/application/usecase"
	"github.com/jhoicas/Usuarios-api/internal/domain/repository"
	"github.com/jhoicas/Usuarios-api/internal/infrastructure/memory"
	"github.com/jhoicas/Usuarios-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Usuarios-api/internal/interfaces/http"
	"github.com/jhoicas/Usuarios-api/pkg/config"
	"github.com/jhoicas/Usuarios-api/pkg/logger"
	"github.com/jhoicas/Usuarios-api/pkg/password"
)

// store agrupa la implementación de persistencia elegida por STORE_DRIVER.
type store struct {
	repo   repository.UsuariosRepository
	tx     usecase.UsuariosTxRunner
	health func(ctx context.Context) error
	close  func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacén")
	}
	defer st.close()

	usuariosUC := usecase.NewUsuariosUseCase(st.repo, st.tx, password.New(cfg.Security.HashPasswords))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	if cfg.CORS.AllowedOrigins != "" {
		app.Use(httpRouter.CORS(cfg.App.Name, cfg.CORS.AllowedOrigins))
	}
	if cfg.RateLimit.Max > 0 {
		app.Use(httpRouter.RateLimit(cfg.RateLimit.Max, cfg.RateLimit.Window))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Docs.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerFile,
			Path:     "docs",
			Title:    "Usuarios API",
		}))
	} else {
		log.Warn().Str("file", cfg.Docs.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	if !cfg.JWT.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: /api sin autenticación")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		UsuariosUC: usuariosUC,
		Log:        log,
		AppName:    cfg.App.Name,
		Pagination: httpRouter.PaginationConfig{
			DefaultSize: cfg.Pagination.DefaultSize,
			MaxSize:     cfg.Pagination.MaxSize,
		},
		JWTSecret: cfg.JWT.Secret,
		Health:    st.health,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*store, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		repo := memory.NewUsuariosRepository()
		return &store{
			repo:   repo,
			tx:     memory.NewTxRunner(repo),
			health: repo.Ping,
			close:  func() {},
		}, nil
	}

	if cfg.DB.AutoMigrate {
		db, err := postgres.OpenDB(cfg.DB.ConnectionString())
		if err != nil {
			return nil, err
		}
		err = postgres.Migrate(ctx, db)
		db.Close()
		if err != nil {
			return nil, err
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &store{
		repo:   postgres.NewUsuariosRepository(pool),
		tx:     postgres.NewTxRunner(pool),
		health: pool.Ping,
		close:  pool.Close,
	}, nil
}
