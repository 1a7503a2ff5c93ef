package commands

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/cycleadvisor/internal/api"
	"github.com/terraincognita07/cycleadvisor/internal/cli"
	"github.com/terraincognita07/cycleadvisor/internal/services"
)

func newAnalyzeCommand() *cobra.Command {
	var (
		userID  uint
		rawDate string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print a cycle report for one user",
		RunE: func(cmd *cobra.Command, args []string) error {
			referenceDate, err := services.ParseReferenceDate(rawDate, time.Now(), cfg.Location)
			if err != nil {
				return err
			}

			database, repositories, err := openDatabase()
			if err != nil {
				return err
			}
			defer closeDatabase(database)

			deps := api.NewDependencies(repositories, api.ServiceOptions{
				Location:     cfg.Location,
				PHITrendDays: cfg.PHITrendDays,
			})
			analysis, history, err := deps.Analysis.Analyze(cmd.Context(), userID, referenceDate)
			if err != nil {
				return err
			}
			return cli.RenderReport(cmd.OutOrStdout(), analysis, history)
		},
	}

	cmd.Flags().UintVar(&userID, "user", 0, "user id")
	cmd.Flags().StringVar(&rawDate, "date", "", "reference date YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
