package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/cycleadvisor/internal/api"
	"github.com/terraincognita07/cycleadvisor/internal/cli"
)

func newImportCommand() *cobra.Command {
	var (
		userID uint
		path   string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import cycle history and PHI scores from a JSON or YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			document, err := cli.ReadImportFile(path)
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
			result, err := cli.RunImport(cmd.Context(), deps.Cycles, deps.PHI, userID, document, cfg.Location)
			if err != nil {
				return err
			}

			log.Info().
				Uint("user", userID).
				Int("cycles", result.Cycles).
				Int("phi", result.PHIScores).
				Msg("import finished")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d cycle(s) and %d PHI score(s) for user %d\n",
				result.Cycles, result.PHIScores, userID)
			return err
		},
	}

	cmd.Flags().UintVar(&userID, "user", 0, "user id")
	cmd.Flags().StringVar(&path, "file", "", "path to a JSON or YAML file with cycleHistory and phi lists")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
