package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/cycleadvisor/internal/config"
	"github.com/terraincognita07/cycleadvisor/internal/db"
	"github.com/terraincognita07/cycleadvisor/internal/logging"
	"gorm.io/gorm"
)

var (
	// Version is set at build time via ldflags.
	Version = "dev"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:           "cycleadvisor",
	Short:         "Menstrual cycle analysis and next-cycle prediction",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}

		if err := logging.Init(verbose, cfg.LogDir); err != nil {
			log.Warn().Err(err).Msg("file logging disabled")
		}
		log.Debug().
			Str("version", Version).
			Str("db", cfg.DBPath).
			Str("tz", cfg.Location.String()).
			Msg("configuration loaded")
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.AddCommand(newServeCommand(), newAnalyzeCommand(), newImportCommand())
}

func openDatabase() (*gorm.DB, *db.Repositories, error) {
	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}
	return database, db.NewRepositories(database), nil
}

func closeDatabase(database *gorm.DB) {
	sqlDB, err := database.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn().Err(err).Msg("close database")
	}
}
