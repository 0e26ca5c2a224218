package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dca"
	"github.com/etnz/dca/date"
	"github.com/etnz/dca/logger"
	"github.com/etnz/dca/renderer"
	"github.com/google/subcommands"
)

// orderFlags are the flags describing a purchase, shared by add and calc.
type orderFlags struct {
	amount string
	price  string
	date   string
}

func (o *orderFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&o.amount, "a", "500", "Amount spent in USD")
	f.StringVar(&o.price, "p", "", "BTC price paid in USD (default the current price)")
	f.StringVar(&o.date, "d", "0d", "Date of the purchase. See the user manual for supported date formats.")
}

// order parses the flags, fetching the current price if none was given.
func (o *orderFlags) order(ctx context.Context, src dca.PriceSource) (dca.Order, error) {
	amount, err := dca.ParseDollars(o.amount)
	if err != nil {
		return dca.Order{}, fmt.Errorf("invalid amount %q: %w", o.amount, err)
	}
	on, err := date.Parse(o.date)
	if err != nil {
		return dca.Order{}, err
	}
	var price dca.Money
	if o.price == "" {
		price = src.Current(ctx)
	} else if price, err = dca.ParseDollars(o.price); err != nil {
		return dca.Order{}, fmt.Errorf("invalid price %q: %w", o.price, err)
	}
	return dca.Order{Amount: amount, Price: price, Date: on}, nil
}

type addCmd struct {
	orderFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a bitcoin purchase" }
func (*addCmd) Usage() string {
	return `dca add [-a <amount>] [-p <price>] [-d <date>]

  Records a purchase of <amount> USD of bitcoin at <price> USD per BTC.
  The amount defaults to 500, the price to the current price and the date to today.

`
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, status := open()
	if s == nil {
		return status
	}
	defer s.Close()

	o, err := c.order(ctx, s.source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	r, err := s.tracker.Add(o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	fmt.Fprint(out, renderer.AddedNotice(r))
	return subcommands.ExitSuccess
}

type calcCmd struct {
	orderFlags
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "preview the bitcoin a purchase would buy" }
func (*calcCmd) Usage() string {
	return `dca calc [-a <amount>] [-p <price>] [-d <date>]

  Computes the bitcoin <amount> USD buys at <price>, without recording anything.
  Use 'dca add' with the same flags to record it.

`
}

func (c *calcCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := Config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	logger.Init(cfg.LogLevel)
	src, err := priceSource(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	o, err := c.order(ctx, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.CalculatorMarkdown(o))
	return subcommands.ExitSuccess
}
