package cmd

import (
	"context"
	"flag"

	"github.com/etnz/dca/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio overview" }
func (*summaryCmd) Usage() string {
	return `dca summary

  Displays the total invested, the bitcoin held, its current value and the profit.

`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (*summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, status := open()
	if s == nil {
		return status
	}
	defer s.Close()

	s.refresh(ctx)
	printMarkdown(renderer.PortfolioMarkdown(s.tracker))
	return subcommands.ExitSuccess
}

type trackerCmd struct{}

func (*trackerCmd) Name() string     { return "tracker" }
func (*trackerCmd) Synopsis() string { return "compare the current price with the average cost" }
func (*trackerCmd) Usage() string {
	return `dca tracker

  Displays the average cost against the current price, the trend of the prices
  paid, and the monthly statistics.

`
}

func (*trackerCmd) SetFlags(f *flag.FlagSet) {}

func (*trackerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, status := open()
	if s == nil {
		return status
	}
	defer s.Close()

	s.refresh(ctx)
	printMarkdown(renderer.TrackerMarkdown(s.tracker))
	return subcommands.ExitSuccess
}

type monthlyCmd struct{}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the purchases per month" }
func (*monthlyCmd) Usage() string {
	return `dca monthly

  Displays, for each month, the number of purchases, the amount invested, the
  bitcoin bought and its average cost.

`
}

func (*monthlyCmd) SetFlags(f *flag.FlagSet) {}

func (*monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, status := open()
	if s == nil {
		return status
	}
	defer s.Close()

	printMarkdown(renderer.MonthlyMarkdown(s.tracker.Monthly()))
	return subcommands.ExitSuccess
}
