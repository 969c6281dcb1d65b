package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"autoscan/core/config"
	"autoscan/core/loader"
	"autoscan/core/logger"
	"autoscan/core/middleware/auth"
	"autoscan/core/middleware/rayid"
	"autoscan/core/storage"
	"autoscan/feature/endpoints"
	"autoscan/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "autoscan/docs/swagger"
)

// @title autoscan API
// @version 1.0
// @description Records the location of scanned inventory devices.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd exposes the processor over HTTP for scanner hosts that cannot run it locally.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scan HTTP server",
	Long:  `Starts the HTTP server. POST /scans runs the same pipeline as the processor and reports its exit code.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.IsValidPort() {
			return fmt.Errorf("invalid server port %q", cfg.Server.Port)
		}

		db, err := openStore(cfg, logg)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}
		defer closeStore(db, logg)
		logg.Info("Connected to inventory store", zap.String("driver", cfg.Database.Driver))

		// Exports are optional; scans work without object storage.
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Warn("Snapshot export disabled", zap.Error(err))
		}

		app, err := newServer(cfg, logg, db, client)
		if err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

// newServer builds the Fiber app with its middleware chain and every enabled feature.
// The Swagger UI is mounted before the API key check and stays public.
func newServer(cfg *config.Config, logg *zap.Logger, db *gorm.DB, client storage.Client) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.Server.BodyLimit,
	})

	mgr := loader.NewManager()
	mgr.Register(endpoints.NewFeature(newService(cfg, logg, db, client)))
	mgr.Register(integrity.NewFeature(db, logg))

	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, err
	}
	logg.Info("Features loaded", zap.Strings("features", loaded))

	return app, nil
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
