// Package output provides utilities for formatting and displaying computed
// metric cards.
package output

import (
	"fmt"
	"strings"

	"github.com/compintel/ratecard/pkg/presenter"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(header string, metrics []presenter.Metric) {
	fmt.Printf("--- %s ---\n", header)
	width := 0
	for _, m := range metrics {
		if len(m.Label) > width {
			width = len(m.Label)
		}
	}
	for _, m := range metrics {
		fmt.Printf("%s %-*s | %-16s | %s\n", m.Icon, width, m.Label, m.Value, m.Subtitle)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(metrics []presenter.Metric) {
	fmt.Print(CsvString(metrics))
}

// CsvString renders the CSV output as a string for API responses. Formatted
// values contain thousands separators, so every field is quoted.
func CsvString(metrics []presenter.Metric) string {
	var b strings.Builder
	b.WriteString(`"label","value","subtitle","numeric"` + "\n")
	for _, m := range metrics {
		fmt.Fprintf(&b, `"%s","%s","%s","%g"`+"\n", m.Label, m.Value, m.Subtitle, m.Numeric)
	}
	return b.String()
}
