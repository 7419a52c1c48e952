package cli

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/detour/internal/engine"
	"github.com/danieljhkim/detour/internal/settings"
	"github.com/danieljhkim/detour/internal/transport"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		result, err := eng.Show(cmd.Context())
		if err != nil {
			return notConfiguredHint(err)
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, result)
		}

		PrintSection(out, "Settings")
		printSettings(out, result.Settings, result.EnabledModes)
		return nil
	},
}

func printSettings(w io.Writer, s *settings.Settings, enabled []transport.Mode) {
	offered := modeNames(enabled)
	if offered == "" {
		offered = "(none)"
	}
	PrintLabelValue(w, "Offered", offered)
	PrintLabelValue(w, "Bus routes", labelsOrNone(s.BusRoutes))
	PrintLabelValue(w, "Subway lines", labelsOrNone(s.SubwayLines))
	if !s.SavedAt.IsZero() {
		PrintLabelValue(w, "Saved", s.SavedAt.Local().Format("2006-01-02 15:04"))
	}
}

func labelsOrNone(labels []string) string {
	if len(labels) == 0 {
		return "(none, a random route is shown)"
	}
	return strings.Join(labels, ", ")
}

// notConfiguredHint points the user at setup when nothing has been saved.
func notConfiguredHint(err error) error {
	if errors.Is(err, engine.ErrNotConfigured) {
		return errors.New("no settings saved yet\nRun 'detour setup' first")
	}
	return err
}
