package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"mtg-indexer/core/config"
	"mtg-indexer/core/loader"
	"mtg-indexer/core/logger"
	"mtg-indexer/core/middleware"
	"mtg-indexer/core/store"

	"mtg-indexer/feature/catalog"
	"mtg-indexer/feature/ingest"
	"mtg-indexer/feature/pricing"
	"mtg-indexer/feature/search"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the indexer API server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if !cfg.Server.IsValidMode() {
			log.Fatalf("Unknown server mode %q", cfg.Server.Mode)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to the Store
		st, err := store.NewRedis(cfg.Store)
		if err != nil {
			logg.Fatal("Failed to connect to store", zap.Error(err))
		}
		defer st.Close()

		// 4. Corpus Source
		source, err := catalog.NewSource(cfg.Corpus, cfg.ObjStore)
		if err != nil {
			logg.Fatal("Failed to create corpus source", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// Request id must be first to trace everything.
		app.Use(middleware.RequestID())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRequestID(logg, c)
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

		// Health stays public.
		app.Get("/health", func(c *fiber.Ctx) error {
			if err := st.Ping(c.Context()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "degraded", "error": err.Error(),
				})
			}
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// Auth protects everything behind it.
		app.Use(middleware.APIKey(cfg.Server.ApiKey))

		// 6. Initialize Feature Loader
		mgr := loader.NewManager(logg)

		// Register Features. Search and pricing mount their static routes
		// before the catalog wildcards.
		catalogFeature := catalog.NewFeature(st, logg)
		mgr.Register(search.NewFeature(st, catalogFeature.Service(), logg))
		mgr.Register(pricing.NewFeature(st, catalogFeature.Service(), logg))
		mgr.Register(catalogFeature)
		mgr.Register(ingest.NewFeature(
			ingest.NewService(st, source, cfg.Corpus, cfg.Indexer, logg),
			cfg.Server.Mode,
		))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("mode", cfg.Server.Mode))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
