package cmd

import (
	"fmt"

	"autoscan/core/barcode"
	"autoscan/core/config"
	"autoscan/core/database"
	"autoscan/core/logger"
	"autoscan/core/storage"
	"autoscan/feature/endpoints"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// bootstrap loads the configuration and builds the configured logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logg, nil
}

// openStore connects to the inventory store and creates the endpoints table when asked to.
func openStore(cfg *config.Config, logg *zap.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := endpoints.Migrate(db); err != nil {
			closeStore(db, logg)
			return nil, err
		}
		logg.Debug("Endpoints table migrated", zap.String("driver", cfg.Database.Driver))
	}
	return db, nil
}

func closeStore(db *gorm.DB, logg *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logg.Warn("Failed to close inventory store", zap.Error(err))
	}
}

// newService wires the endpoints service. client may be nil.
func newService(cfg *config.Config, logg *zap.Logger, db *gorm.DB, client storage.Client) *endpoints.Service {
	return endpoints.NewService(db, barcode.NewDecoder(cfg.Scan), logg, client, cfg.Storage.Bucket)
}
