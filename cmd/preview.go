package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
)

// previewCmd represents the preview command.
var previewCmd = newPreviewCmd()

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Print the migrated content of a file",
		Long:  "Print the migrated content of a file to stdout. The file itself is not changed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			return newWorkflow(cmd, cfg, logger).Preview(cmd.Context(), m.Path(args[0]), cmd.OutOrStdout())
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
