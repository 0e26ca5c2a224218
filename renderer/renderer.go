// Package renderer turns the tracker state into markdown documents.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/dca"
	"github.com/etnz/dca/date"
)

// dayLabel formats a date with its weekday, like "2024-01-05 Friday".
func dayLabel(d date.Date) string {
	return fmt.Sprintf("%s %s", d, d.Weekday())
}

// chartLabel is the short date used on the chart axis.
func chartLabel(d date.Date) string { return d.Format("01-02") }

// barWidth is the number of cells of the longest bar in a chart.
const barWidth = 24

// bar draws 'value' as a horizontal bar, 'top' being barWidth cells long.
func bar(value, top dca.Money) string {
	if !top.IsPositive() || !value.IsPositive() {
		return ""
	}
	n := int(value.AsFloat()/top.AsFloat()*barWidth + 0.5)
	return strings.Repeat("█", max(n, 1))
}
