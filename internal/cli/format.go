package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	// fatih/color disables these automatically when output is not a TTY
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgHiBlack)
	dimColor     = color.New(color.FgHiBlack)
)

// PrintSection prints a section header
func PrintSection(w io.Writer, title string) {
	fmt.Fprintln(w)
	_, _ = headerColor.Fprintf(w, "▸ %s\n", title)
	fmt.Fprintln(w)
}

// PrintSuccess prints a success message with a checkmark
func PrintSuccess(w io.Writer, msg string) {
	_, _ = successColor.Fprintf(w, "✓ %s\n", msg)
}

// PrintWarning prints a warning message with a warning symbol
func PrintWarning(w io.Writer, msg string) {
	_, _ = warningColor.Fprintf(w, "⚠ %s\n", msg)
}

// PrintInfo prints an informational message
func PrintInfo(w io.Writer, msg string) {
	fmt.Fprintln(w, msg)
}

// PrintLabelValue prints a label-value pair with proper formatting
func PrintLabelValue(w io.Writer, label, value string) {
	_, _ = labelColor.Fprintf(w, "  %s: ", label)
	_, _ = valueColor.Fprintln(w, value)
}

// PrintLabelValueWithColor prints a label-value pair with a custom value color
func PrintLabelValueWithColor(w io.Writer, label, value string, valueClr *color.Color) {
	_, _ = labelColor.Fprintf(w, "  %s: ", label)
	_, _ = valueClr.Fprintln(w, value)
}

// PrintNumberedList prints a numbered list
func PrintNumberedList(w io.Writer, items []string, indent int) {
	indentStr := strings.Repeat("  ", indent)
	for i, item := range items {
		_, _ = infoColor.Fprintf(w, "%s%d. %s\n", indentStr, i+1, item)
	}
}

// PrintEmptyState prints a message when there's no data to show
func PrintEmptyState(w io.Writer, msg string) {
	_, _ = dimColor.Fprintf(w, "  %s\n", msg)
}

// PrintCount formats a count with the singular or plural noun
func PrintCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
