package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"jobradar/internal/config"
	"jobradar/internal/database"
	dbpostgres "jobradar/internal/database/postgres"
	"jobradar/internal/delivery/http/handler"
	"jobradar/internal/delivery/http/middleware"
	"jobradar/internal/delivery/http/routes"
	"jobradar/internal/infrastructure/cache"
	"jobradar/internal/maintenance"
	"jobradar/internal/repository"
	"jobradar/internal/synth"
	"jobradar/internal/usecase"
	"jobradar/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber   *fiber.App
	Sweeper *maintenance.Sweeper
}

// Bootstrap wires storage, cache, usecases, and the HTTP layer. The
// returned cleanup closes the external connections.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := database.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ensure schema: %w", err)
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	repo := repository.NewPostgresJobListingRepository(db)

	hub := ws.NewHub(logger)
	go hub.Run()

	ingestor := usecase.NewIngestor(synth.NewGenerator(nil), repo, redisCache, ws.NewNotifier(hub), logger)
	reader := usecase.NewJobSearch(repo, redisCache, logger)
	sessions := usecase.NewSessionRegistry(func() *usecase.SearchSession {
		return usecase.NewSearchSession(ingestor, reader, logger)
	}, logger)
	go sessions.Run()

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())

	registry := routes.Registry{
		Health: handler.NewHealthHandler(db),
		Ingest: handler.NewIngestHandler(ingestor),
		Search: handler.NewSearchHandler(sessions),
		Admin:  handler.NewJobsAdminHandler(usecase.NewExporter(repo, logger), usecase.NewJobAdmin(repo, redisCache, logger)),
		WS:     ws.NewHandler(hub, logger),
	}
	registry.Register(f)

	cleanup := func() error {
		_ = redisCache.Close()
		return db.Close()
	}

	return &App{
		Fiber:   f,
		Sweeper: maintenance.NewSweeper(repo, cfg.Retention, logger),
	}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
