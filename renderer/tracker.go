package renderer

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/etnz/dca"
	md "github.com/nao1215/markdown"
)

// TrackerMarkdown renders the cost analysis, the price trend and the monthly statistics.
func TrackerMarkdown(t *dca.Tracker) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Price Tracker")
	if len(t.Records()) == 0 {
		doc.PlainText("No investment records yet. Start tracking with `dca add`.")
		return doc.String()
	}

	a := t.Analysis()
	status := "Above cost"
	if !a.AboveCost() {
		status = "Below cost"
	}
	doc.H2("Cost Analysis")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Average Cost", a.Average.String()},
		Rows: [][]string{
			{"Current Price", a.Current.String()},
			{md.Bold(status), fmt.Sprintf("%s (%s)", a.Diff.SignedString(), a.DiffRate.SignedString())},
		},
	})

	if points := t.Chart(); len(points) > 0 {
		doc.H2("Price Trend")
		doc.Table(chartTable(points))
	}

	doc.H2("Monthly Statistics")
	doc.Table(monthlyTable(t.Monthly()))

	return doc.String()
}

// MonthlyMarkdown renders the monthly statistics only.
func MonthlyMarkdown(months map[string]dca.MonthStat) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly Statistics")
	if len(months) == 0 {
		doc.PlainText("No investment records yet.")
		return doc.String()
	}
	doc.Table(monthlyTable(months))
	return doc.String()
}

// chartTable draws the observed prices as bars, marking those under the average cost.
func chartTable(points []dca.ChartPoint) md.TableSet {
	top := points[0].Price
	for _, p := range points {
		if p.Price.GreaterThanOrEqual(top) {
			top = p.Price
		}
	}
	if points[0].Average.GreaterThanOrEqual(top) {
		top = points[0].Average
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "BTC Price", "Average Cost", ""},
		Rows:   [][]string{},
	}
	for _, p := range points {
		mark := ""
		if p.Price.LessThan(p.Average) {
			mark = " ▼"
		}
		table.Rows = append(table.Rows, []string{
			chartLabel(p.Date),
			p.Price.String(),
			p.Average.String(),
			bar(p.Price, top) + mark,
		})
	}
	return table
}

// monthlyTable lists the months, most recent first.
func monthlyTable(months map[string]dca.MonthStat) md.TableSet {
	keys := slices.Sorted(maps.Keys(months))
	slices.Reverse(keys)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Purchases", "Invested", "BTC", "Average Cost"},
		Rows:   [][]string{},
	}
	for _, k := range keys {
		s := months[k]
		table.Rows = append(table.Rows, []string{
			k,
			fmt.Sprint(s.Count),
			s.Amount.String(),
			s.Quantity.String(),
			s.AverageCost().String(),
		})
	}
	return table
}
