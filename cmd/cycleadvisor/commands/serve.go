package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/cycleadvisor/internal/api"
	"github.com/terraincognita07/cycleadvisor/internal/config"
	"github.com/terraincognita07/cycleadvisor/internal/services"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the reminder loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	secretKey, err := config.ResolveSecretKey()
	if err != nil {
		return err
	}

	database, repositories, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDatabase(database)

	deps := api.NewDependencies(repositories, api.ServiceOptions{
		Location:      cfg.Location,
		PHITrendDays:  cfg.PHITrendDays,
		SecretKey:     []byte(secretKey),
		ShareTokenTTL: cfg.ShareTokenTTL,
	})
	handler, err := api.NewHandler(deps)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newApp(handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(parent)
	defer cancelLifecycle()

	if cfg.ReminderEnabled {
		reminders := services.NewReminderService(deps.Accounts, deps.Analysis, services.LogNotifier{}, services.ReminderConfig{
			Interval:           cfg.ReminderInterval,
			PeriodReminderDays: cfg.ReminderPeriodDays,
			Location:           cfg.Location,
		})
		reminders.Start(lifecycleCtx)
	}

	sigCtx, stopSignals := signal.NotifyContext(lifecycleCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("db", cfg.DBPath).
		Str("tz", cfg.Location.String()).
		Bool("reminders", cfg.ReminderEnabled).
		Msg("cycleadvisor listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newApp(handler *api.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Cycle Advisor",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Output: log.Logger,
	}))
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)
	return app
}
