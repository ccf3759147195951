package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"sbb_backend/internals/configs"
	database "sbb_backend/internals/databases"
	"sbb_backend/internals/features/board/repository"
	middlewares "sbb_backend/internals/middlewares"
	routes "sbb_backend/internals/route"
	"sbb_backend/internals/seeds"
)

func main() {
	log := configs.NewLogger("sbb_backend")
	cfg := configs.LoadEnv(log)
	configs.SetLogLevel(log, cfg.LogLevel)

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	metrics := middlewares.NewMetrics("sbb")
	middlewares.SetupMiddlewares(app, cfg, log, metrics)

	// 🔌 DB connect + pool
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	if err := database.TunePool(db, cfg); err != nil {
		log.WithError(err).Fatal("database pool setup failed")
	}
	if cfg.DBAutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.WithError(err).Fatal("auto migration failed")
		}
		log.Info("schema migrated")
	}
	if cfg.Seed {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := seeds.RunAllSeeds(ctx, repository.NewStore(db), log, cfg.SeedFile)
		cancel()
		if err != nil {
			log.WithError(err).Fatal("seeding failed")
		}
	}

	routes.SetupRoutes(app, db, log, metrics)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.WithField("port", cfg.Port).Info("listening")
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.WithError(err).Fatal("server error")
		}
	}()

	// graceful shutdown + close DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.WithError(err).Warn("shutdown")
	}
	if err := database.Close(db); err != nil {
		log.WithError(err).Warn("closing database")
	}
	log.Info("bye")
}
