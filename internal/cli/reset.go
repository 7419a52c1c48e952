package cli

import (
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		result, err := eng.Reset(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, result)
		}

		if result.Removed {
			PrintSuccess(out, "Settings removed")
		} else {
			PrintEmptyState(out, "No settings to remove")
		}
		return nil
	},
}
