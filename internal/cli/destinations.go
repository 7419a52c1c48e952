package cli

import (
	"github.com/spf13/cobra"
)

var destinationsCmd = &cobra.Command{
	Use:   "destinations",
	Short: "List quick-pick destinations",
	Long: `List the quick-pick destinations.

The list can be changed with planner.destinations in config.yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		destinations := eng.Destinations()

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, destinations)
		}

		PrintSection(out, "Quick picks")
		if len(destinations) == 0 {
			PrintEmptyState(out, "No quick-pick destinations configured")
			return nil
		}
		PrintNumberedList(out, destinations, 1)
		return nil
	},
}
