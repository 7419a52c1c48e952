package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/detour/internal/engine"
	"github.com/danieljhkim/detour/internal/transport"
)

var (
	setupBus         bool
	setupSubway      bool
	setupCar         bool
	setupDisable     []string
	setupBusRoutes   string
	setupSubwayLines string
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Choose which transport modes to offer",
	Long: `Save which transport modes detour offers and the labels to show for them.

Every mode is offered unless turned off with --bus=false, --subway=false,
--car=false or --disable <mode>. Bus routes and subway lines are
comma-separated, e.g. --bus-routes "322, m13, express 1".

Saving replaces any previous settings.`,
	Example: `  detour setup --bus-routes "322, m13" --subway-lines "Line 1, Line 4"
  detour setup --disable car`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVar(&setupBus, "bus", true, "Offer the bus")
	setupCmd.Flags().BoolVar(&setupSubway, "subway", true, "Offer the subway")
	setupCmd.Flags().BoolVar(&setupCar, "car", true, "Offer the car")
	setupCmd.Flags().StringSliceVar(&setupDisable, "disable", nil, "Modes to turn off (bus, subway, car)")
	setupCmd.Flags().StringVar(&setupBusRoutes, "bus-routes", "", "Comma-separated bus routes")
	setupCmd.Flags().StringVar(&setupSubwayLines, "subway-lines", "", "Comma-separated subway lines")
}

func runSetup(cmd *cobra.Command, args []string) error {
	disabled, err := transport.ParseModes(setupDisable)
	if err != nil {
		return err
	}

	enabled := map[transport.Mode]bool{
		transport.Bus:    setupBus,
		transport.Subway: setupSubway,
		transport.Car:    setupCar,
	}
	for _, m := range disabled {
		enabled[m] = false
	}

	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}

	result, err := eng.Setup(cmd.Context(), &engine.SetupRequest{
		Enabled:     enabled,
		BusRoutes:   setupBusRoutes,
		SubwayLines: setupSubwayLines,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, result)
	}

	PrintSuccess(out, "Settings saved")
	printSettings(out, result.Settings, result.EnabledModes)

	if len(result.EnabledModes) == 0 {
		PrintWarning(out, "No transport modes are offered; plans will be empty")
	} else {
		fmt.Fprintln(out)
		PrintInfo(out, `Next: detour plan <destination>`)
	}

	return nil
}

func modeNames(modes []transport.Mode) string {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.Label()
	}
	return strings.Join(names, ", ")
}
