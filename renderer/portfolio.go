package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/dca"
	md "github.com/nao1215/markdown"
)

// PortfolioMarkdown renders the portfolio overview at the tracker's current price.
func PortfolioMarkdown(t *dca.Tracker) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	s := t.Snapshot()

	doc.H1("Bitcoin DCA Portfolio")
	doc.PlainText(fmt.Sprintf("BTC price: %s", md.Bold(t.Price().String())))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Overview", ""},
		Rows: [][]string{
			{"Total Invested", s.Invested.String()},
			{"BTC Held", s.Quantity.String()},
			{"Current Value", s.Value.String()},
			{"Profit / Loss", s.Profit.SignedString()},
			{"Return", s.ProfitRate.SignedString()},
		},
	})

	return doc.String()
}
