package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dca"
	"github.com/etnz/dca/logger"
	"github.com/etnz/dca/renderer"
	"github.com/google/subcommands"
)

type priceCmd struct{}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "display the current bitcoin price" }
func (*priceCmd) Usage() string {
	return `dca price

  Fetches the current bitcoin price from CoinGecko, in every currency available.
  Displays the fallback price if it cannot be fetched.

`
}

func (*priceCmd) SetFlags(f *flag.FlagSet) {}

func (*priceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := Config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	logger.Init(cfg.LogLevel)

	if *priceFlag != "" {
		src, err := priceSource(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		printMarkdown(renderer.QuoteMarkdown(dca.Quote{dca.USD: src.Current(ctx)}))
		return subcommands.ExitSuccess
	}

	q, err := dca.NewCoinGecko(nil, cfg.PriceURL).Quote(ctx)
	if err != nil {
		logger.Get().Warnw("cannot fetch bitcoin price, using fallback", "fallback", dca.FallbackPrice.String(), "error", err)
		q = dca.Quote{dca.USD: dca.FallbackPrice}
	}
	printMarkdown(renderer.QuoteMarkdown(q))
	return subcommands.ExitSuccess
}
