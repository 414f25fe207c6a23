package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-circuit-runner/models"
)

const (
	defaultBarWidth = 40
	minBarWidth     = 10
	maxBarWidth     = 60
)

// renderHistogram draws one bar per observed bitstring in lexicographic
// order. The most frequent outcome fills barWidth cells.
func renderHistogram(counts models.Counts, barWidth int) string {
	if len(counts) == 0 {
		return "no outcomes"
	}
	if barWidth <= 0 {
		barWidth = defaultBarWidth
	}

	keys := counts.Keys()
	total := counts.Total()

	maxCount, labelWidth := 0, 0
	for _, k := range keys {
		maxCount = max(maxCount, counts[k])
		labelWidth = max(labelWidth, len(k))
	}

	var b strings.Builder
	for i, k := range keys {
		n := counts[k]
		filled := int(math.Round(float64(n) / float64(maxCount) * float64(barWidth)))
		bar := barStyle.Render(strings.Repeat("█", filled)) + strings.Repeat(" ", barWidth-filled)

		fmt.Fprintf(&b, "%-*s %s %d (%.1f%%)", labelWidth, k, bar, n, 100*float64(n)/float64(total))
		if i < len(keys)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// barWidthFor fits the bars into a terminal of the given width.
func barWidthFor(width int) int {
	if width <= 0 {
		return defaultBarWidth
	}
	return max(minBarWidth, min(maxBarWidth, width-30))
}
