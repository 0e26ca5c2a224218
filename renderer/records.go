package renderer

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/etnz/dca"
	md "github.com/nao1215/markdown"
)

// RecordsMarkdown renders the purchase records, most recent first, each valued at 'price'.
func RecordsMarkdown(records []dca.Record, price dca.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investment Records")
	if len(records) == 0 {
		doc.PlainText("No investment records yet. Use `dca add` to record a purchase.")
		return doc.String()
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b dca.Record) int { return b.Date().Compare(a.Date()) })

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "ID", "Amount", "Price", "BTC", "Value", "Profit", "Return"},
		Rows:   [][]string{},
	}
	for _, r := range sorted {
		v := dca.Valuate(r, price)
		table.Rows = append(table.Rows, []string{
			dayLabel(r.Date()),
			string(r.ID()),
			r.Amount().String(),
			r.Price().String(),
			r.Quantity().String(),
			v.Value.String(),
			v.Profit.SignedString(),
			v.ProfitRate.SignedString(),
		})
	}
	doc.Table(table)

	s := dca.NewSnapshot(records, price)
	doc.H2("Statistics")
	doc.BulletList(
		fmt.Sprintf("Purchases: %d", len(records)),
		fmt.Sprintf("Total invested: %s", s.Invested),
		fmt.Sprintf("Total BTC: %s", s.Quantity),
		fmt.Sprintf("Average buy price: %s", dca.AverageCost(records)),
	)

	return doc.String()
}
