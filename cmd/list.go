package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

const listLongDescription = `List the files a migration would change without writing anything.

Each file is reported with the components it declares and the imports the
migrated code needs. Takes the same patterns and flags as the root command.`

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [patterns...]",
		Short: "List files and the components a migration would rewrite",
		Long:  listLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			_, err = newWorkflow(cmd, cfg, logger).Plan(cmd.Context(), migrateArgs(cfg, args))

			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
