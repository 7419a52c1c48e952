package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/detour/internal/engine"
	"github.com/danieljhkim/detour/internal/excuse"
	"github.com/danieljhkim/detour/internal/transport"
)

var planCmd = &cobra.Command{
	Use:   "plan <destination>",
	Short: "Plan a trip and see which options are available",
	Long: `Plan a trip to a destination using the saved settings.

Every offered mode is listed. Some come back unavailable with an excuse;
run the command again for a fresh attempt.`,
	Example: `  detour plan park
  detour plan "grandma's house"
  detour plan --seed 42 library`,
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}

	result, err := eng.Plan(cmd.Context(), &engine.PlanRequest{
		Destination: strings.Join(args, " "),
	})
	if err != nil {
		if errors.Is(err, engine.ErrValidation) {
			return fmt.Errorf("%w\nQuick picks: %s", err, strings.Join(eng.Destinations(), ", "))
		}
		return notConfiguredHint(err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, result)
	}

	PrintSection(out, fmt.Sprintf("Trip to %s", result.Destination))
	if result.Suggestion != "" {
		PrintEmptyState(out, fmt.Sprintf("(did you mean %q?)", result.Suggestion))
		fmt.Fprintln(out)
	}

	if len(result.Options) == 0 {
		PrintEmptyState(out, "No transport modes are offered. Run 'detour setup' to choose some.")
		return nil
	}

	for _, opt := range result.Options {
		if opt.Available {
			PrintSuccess(out, fmt.Sprintf("%s: %s", opt.Mode.Label(), availableDetail(opt)))
			continue
		}
		PrintWarning(out, fmt.Sprintf("%s: unavailable", opt.Mode.Label()))
		PrintLabelValueWithColor(out, "Why", opt.Excuse, warningColor)
	}

	fmt.Fprintln(out)
	PrintEmptyState(out, fmt.Sprintf("%s unavailable this time",
		PrintCount(len(result.Unavailable()), "option", "options")))
	return nil
}

func availableDetail(opt engine.TripOption) string {
	if opt.Mode == transport.Bus && opt.Detail != excuse.FallbackRoute {
		return "route " + opt.Detail
	}
	return opt.Detail
}
