package settings

import "strings"

// ParseRouteList splits comma-separated route or line labels as typed by
// the user, trimming whitespace and dropping empty labels.
func ParseRouteList(s string) []string {
	labels := []string{}
	for _, part := range strings.Split(s, ",") {
		if label := strings.TrimSpace(part); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

// compactLabels drops blank labels left behind by older writers.
func compactLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
