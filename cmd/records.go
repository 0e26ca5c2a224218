package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/dca"
	"github.com/etnz/dca/date"
	"github.com/etnz/dca/renderer"
	"github.com/google/subcommands"
)

type recordsCmd struct {
	period string
	start  string
	end    string
	head   int
	tail   int
}

func (*recordsCmd) Name() string     { return "records" }
func (*recordsCmd) Synopsis() string { return "list the purchases with their current value" }
func (*recordsCmd) Usage() string {
	return `dca records [-p <period>] [-s <date>] [-d <date>] [-head <n>] [-tail <n>]

  Lists the purchases, most recent first, valued at the current price.

  Purchases can be restricted to the period (day, week, month, quarter, year)
  containing the -d date, or to the range from -s to -d. Then -head keeps the
  n oldest ones and -tail the n most recent ones.

`
}

func (c *recordsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Period containing the -d date: day, week, month, quarter or year")
	f.StringVar(&c.start, "s", "", "Start date of the range")
	f.StringVar(&c.end, "d", "0d", "End date of the range")
	f.IntVar(&c.head, "head", 0, "Keep only the n oldest purchases")
	f.IntVar(&c.tail, "tail", 0, "Keep only the n most recent purchases")
}

// keep returns the filter on purchase dates, nil to keep them all.
func (c *recordsCmd) keep() (func(dca.Record) bool, error) {
	if c.period == "" && c.start == "" {
		return nil, nil
	}
	end, err := date.Parse(c.end)
	if err != nil {
		return nil, err
	}
	if c.period != "" && c.start != "" {
		return nil, fmt.Errorf("-p and -s are exclusive")
	}

	var r date.Range
	if c.period != "" {
		p, err := date.ParsePeriod(c.period)
		if err != nil {
			return nil, err
		}
		r = p.Range(end)
	} else {
		start, err := date.Parse(c.start)
		if err != nil {
			return nil, err
		}
		r = date.NewRange(start, end)
	}
	return func(rec dca.Record) bool { return r.Contains(rec.Date()) }, nil
}

func (c *recordsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	keep, err := c.keep()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.head < 0 || c.tail < 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail must not be negative")
		return subcommands.ExitUsageError
	}
	s, status := open()
	if s == nil {
		return status
	}
	defer s.Close()

	records := s.tracker.Records()
	if keep != nil {
		records = s.tracker.Filter(keep)
	}
	slices.SortStableFunc(records, func(a, b dca.Record) int { return a.Date().Compare(b.Date()) })
	if c.head > 0 && c.head < len(records) {
		records = records[:c.head]
	}
	if c.tail > 0 && c.tail < len(records) {
		records = records[len(records)-c.tail:]
	}

	printMarkdown(renderer.RecordsMarkdown(records, s.refresh(ctx)))
	return subcommands.ExitSuccess
}
