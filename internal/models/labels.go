package models

import "strings"

// LabelSeparator splits label input; LabelJoiner joins labels for display.
const (
	LabelSeparator = ";"
	LabelJoiner    = "; "
)

// LabelItem is a single free-text tag attached to an account.
type LabelItem struct {
	Text string `json:"text"`
}

// ParseLabels splits text on ';', trims every segment and drops the empty
// ones. Order and duplicates are preserved. Invalid UTF-8 becomes U+FFFD.
func ParseLabels(text string) []LabelItem {
	labels := make([]LabelItem, 0)
	for _, part := range strings.Split(text, LabelSeparator) {
		part = validText(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		labels = append(labels, LabelItem{Text: part})
	}
	return labels
}

// validText replaces invalid UTF-8 with U+FFFD, the way encoding/json
// writes it, so an account reads back exactly as it was kept in memory.
func validText(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

// FormatLabelsForInput renders labels back into the editable text form.
func FormatLabelsForInput(labels []LabelItem) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = l.Text
	}
	return strings.Join(parts, LabelJoiner)
}
