package main

import (
	"context"
	"log"
	"time"

	"github.com/Mohammed-hani69/adsvairl/cmd"
	"github.com/Mohammed-hani69/adsvairl/internal/data/repository"
	"github.com/Mohammed-hani69/adsvairl/internal/wire"
	"github.com/Mohammed-hani69/adsvairl/pkg/cache"
	"github.com/Mohammed-hani69/adsvairl/pkg/database"
	"github.com/Mohammed-hani69/adsvairl/pkg/storage"
	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.Migrate(startupCtx, db, logger); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	repos := repository.NewRepository(db, logger)

	appCache := cache.New(startupCtx, config.Cache, logger)
	defer appCache.Close()

	images, err := storage.NewImageStore(config.Upload, logger)
	if err != nil {
		logger.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	app := wire.Wiring(repos, appCache, images, db, config, logger)

	if config.App.SeedData {
		if err := app.Service.Seed.Seed(startupCtx); err != nil {
			logger.Fatal("Failed to seed defaults", zap.Error(err))
		}
	}

	if removed, err := repos.Session.CleanExpiredSessions(startupCtx); err != nil {
		logger.Warn("Failed to clean expired sessions", zap.Error(err))
	} else if removed > 0 {
		logger.Info("Expired sessions removed", zap.Int64("count", removed))
	}

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
