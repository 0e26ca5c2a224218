package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/dca"
	md "github.com/nao1215/markdown"
)

// CalculatorMarkdown renders the bitcoin an order would buy, without recording it.
func CalculatorMarkdown(o dca.Order) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("DCA Calculator")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", dayLabel(o.Date)},
		Rows: [][]string{
			{"Amount", o.Amount.String()},
			{"BTC Price", o.Price.String()},
			{md.Bold("BTC Received"), md.Bold(dca.Estimate(o.Amount, o.Price).String())},
		},
	})
	if err := o.Validate(); err != nil {
		doc.PlainText(fmt.Sprintf("This order cannot be recorded: %v", err))
	}
	return doc.String()
}

// AddedNotice is the confirmation printed after a purchase is recorded.
func AddedNotice(r dca.Record) string {
	return fmt.Sprintf("✅ Added %s @ %s on %s: %s BTC (id %s)\n",
		r.Amount(), r.Price(), r.Date(), r.Quantity(), r.ID())
}

// QuoteMarkdown renders the current price in every currency of the quote.
func QuoteMarkdown(q dca.Quote) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Bitcoin Price")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Currency", "Price"},
		Rows:      [][]string{},
	}
	for _, cur := range q.Currencies() {
		table.Rows = append(table.Rows, []string{cur, q[cur].String()})
	}
	doc.Table(table)
	return doc.String()
}
