package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/dca"
	"github.com/etnz/dca/date"
	"github.com/etnz/dca/kv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"go.uber.org/zap"
)

// tables parses 'doc' as GitHub flavored markdown and returns the cells of
// each table, header row included.
func tables(t *testing.T, doc string) [][][]string {
	t.Helper()
	source := []byte(doc)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(source))

	var result [][][]string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != extast.KindTable {
			return ast.WalkContinue, nil
		}
		var rows [][]string
		for row := n.FirstChild(); row != nil; row = row.NextSibling() {
			var cells []string
			for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
				cells = append(cells, strings.TrimSpace(string(cell.Text(source))))
			}
			rows = append(rows, cells)
		}
		result = append(result, rows)
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return result
}

func newTracker(t *testing.T, orders ...dca.Order) *dca.Tracker {
	t.Helper()
	tr := dca.OpenTracker(dca.NewPersister(kv.NewMemory()).WithLogger(zap.NewNop().Sugar()))
	for _, o := range orders {
		if _, err := tr.Add(o); err != nil {
			t.Fatal(err)
		}
	}
	return tr
}

func order(amount, price float64, on string) dca.Order {
	return dca.Order{Amount: dca.Dollars(amount), Price: dca.Dollars(price), Date: date.MustParse(on)}
}

func TestPortfolioMarkdown(t *testing.T) {
	tr := newTracker(t, order(500, 25000, "2024-01-05"), order(500, 50000, "2024-02-05"))
	tr.SetPrice(dca.Dollars(40000))

	doc := PortfolioMarkdown(tr)
	if !strings.Contains(doc, "$40,000.00") {
		t.Errorf("PortfolioMarkdown() does not show the price:\n%s", doc)
	}
	tbl := tables(t, doc)
	if len(tbl) != 1 {
		t.Fatalf("got %d tables, want 1:\n%s", len(tbl), doc)
	}
	want := [][]string{
		{"Overview", ""},
		{"Total Invested", "$1,000.00"},
		{"BTC Held", "0.03000000"},
		{"Current Value", "$1,200.00"},
		{"Profit / Loss", "+$200.00"},
		{"Return", "+20.00%"},
	}
	for i, row := range want {
		// header case depends on the table writer
		if !strings.EqualFold(strings.Join(tbl[0][i], "|"), strings.Join(row, "|")) {
			t.Errorf("row %d = %q, want %q", i, tbl[0][i], row)
		}
	}
}

func TestPortfolioMarkdown_Empty(t *testing.T) {
	doc := PortfolioMarkdown(newTracker(t))
	if !strings.Contains(doc, "$0.00") || !strings.Contains(doc, "0.00%") {
		t.Errorf("PortfolioMarkdown(empty) =\n%s", doc)
	}
}

func TestRecordsMarkdown(t *testing.T) {
	records := []dca.Record{
		dca.NewRecord("a", dca.Dollars(500), dca.Dollars(25000), date.MustParse("2024-01-05")),
		dca.NewRecord("b", dca.Dollars(500), dca.Dollars(50000), date.MustParse("2024-02-05")),
	}
	doc := RecordsMarkdown(records, dca.Dollars(30000))

	tbl := tables(t, doc)
	if len(tbl) != 1 || len(tbl[0]) != 3 {
		t.Fatalf("want one table with 2 records:\n%s", doc)
	}
	// most recent first
	if got := tbl[0][1][:2]; got[0] != "2024-02-05 Monday" || got[1] != "b" {
		t.Errorf("first row = %q, want the february record", got)
	}
	if got := tbl[0][2]; got[4] != "0.02000000" || got[5] != "$600.00" || got[6] != "+$100.00" || got[7] != "+20.00%" {
		t.Errorf("second row = %q", got)
	}
	for _, want := range []string{"Purchases: 2", "Total invested: $1,000.00", "Total BTC: 0.03000000", "Average buy price: $33,333.33"} {
		if !strings.Contains(doc, want) {
			t.Errorf("RecordsMarkdown() does not contain %q:\n%s", want, doc)
		}
	}
	if records[0].ID() != "a" {
		t.Error("RecordsMarkdown() reordered its input")
	}
}

func TestRecordsMarkdown_Empty(t *testing.T) {
	doc := RecordsMarkdown(nil, dca.Dollars(30000))
	if len(tables(t, doc)) != 0 || !strings.Contains(doc, "No investment records yet") {
		t.Errorf("RecordsMarkdown(nil) =\n%s", doc)
	}
}

func TestTrackerMarkdown(t *testing.T) {
	tr := newTracker(t,
		order(100, 40000, "2024-01-05"),
		order(200, 50000, "2024-01-20"),
		order(300, 60000, "2024-02-01"),
	)
	tr.SetPrice(dca.Dollars(45000))

	doc := TrackerMarkdown(tr)
	tbl := tables(t, doc)
	if len(tbl) != 3 {
		t.Fatalf("got %d tables, want cost analysis, chart and monthly:\n%s", len(tbl), doc)
	}

	analysis, chart, monthly := tbl[0], tbl[1], tbl[2]
	if !strings.HasPrefix(analysis[2][0], "Below cost") {
		t.Errorf("cost analysis status = %q, want below cost", analysis[2][0])
	}
	if len(chart) != 4 || chart[1][0] != "01-05" || chart[3][0] != "02-01" {
		t.Errorf("chart = %q, want 3 points in date order", chart)
	}
	if len(monthly) != 3 || monthly[1][0] != "2024-02" || monthly[2][0] != "2024-01" {
		t.Errorf("monthly = %q, want most recent month first", monthly)
	}
	if monthly[2][1] != "2" || monthly[2][2] != "$300.00" {
		t.Errorf("january = %q, want 2 purchases for $300.00", monthly[2])
	}
}

func TestTrackerMarkdown_Empty(t *testing.T) {
	doc := TrackerMarkdown(newTracker(t))
	if len(tables(t, doc)) != 0 || !strings.Contains(doc, "No investment records yet") {
		t.Errorf("TrackerMarkdown(empty) =\n%s", doc)
	}
}

func TestCalculatorMarkdown(t *testing.T) {
	doc := CalculatorMarkdown(order(500, 25000, "2024-01-05"))
	tbl := tables(t, doc)
	if len(tbl) != 1 || tbl[0][3][1] != "0.02000000" {
		t.Errorf("CalculatorMarkdown() =\n%s", doc)
	}
	if strings.Contains(doc, "cannot be recorded") {
		t.Errorf("a valid order is reported invalid:\n%s", doc)
	}

	doc = CalculatorMarkdown(order(500, 0, "2024-01-05"))
	if !strings.Contains(doc, "0.00000000") || !strings.Contains(doc, "price must be positive") {
		t.Errorf("CalculatorMarkdown(no price) =\n%s", doc)
	}
}

func TestAddedNotice(t *testing.T) {
	r := dca.NewRecord("id-1", dca.Dollars(500), dca.Dollars(25000), date.MustParse("2024-01-05"))
	got := AddedNotice(r)
	for _, want := range []string{"$500.00", "$25,000.00", "2024-01-05", "0.02000000", "id-1"} {
		if !strings.Contains(got, want) {
			t.Errorf("AddedNotice() = %q, want it to contain %q", got, want)
		}
	}
}

func TestBar(t *testing.T) {
	testCases := []struct {
		value, top float64
		want       int
	}{
		{100, 100, barWidth},
		{50, 100, barWidth / 2},
		{0.1, 100, 1},
		{0, 100, 0},
		{10, 0, 0},
	}
	for _, tc := range testCases {
		if got := len([]rune(bar(dca.Dollars(tc.value), dca.Dollars(tc.top)))); got != tc.want {
			t.Errorf("bar(%v, %v) has %d cells, want %d", tc.value, tc.top, got, tc.want)
		}
	}
}
