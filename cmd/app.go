// Package cmd implements the dca command line application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/dca"
	"github.com/etnz/dca/config"
	"github.com/etnz/dca/logger"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	priceFlag   = flag.String("price", "", "Value the portfolio at this BTC price in USD instead of fetching it")
	storeFlag   = flag.String("store", "", "Storage backend: file, sqlite or memory (default $DCA_STORE or file)")
	dataDirFlag = flag.String("data-dir", "", "Directory of the saved data (default $DCA_DATA_DIR or ~/.dca)")
	Verbose     = flag.Bool("v", false, "Log diagnostics at debug level")
)

// out is where commands print their results.
var out io.Writer = os.Stdout

// Commands lists every subcommand, in the order of the help.
var Commands = []subcommands.Command{
	&addCmd{},
	&rmCmd{},
	&importCmd{},
	&recordsCmd{},
	&summaryCmd{},
	&trackerCmd{},
	&monthlyCmd{},
	&calcCmd{},
	&priceCmd{},
	&exportCmd{},
	&topicCmd{},
}

// Config returns the configuration with the global flags applied over the environment.
func Config() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if *storeFlag != "" {
		cfg.Store = *storeFlag
	}
	if *dataDirFlag != "" {
		cfg.DataDir = *dataDirFlag
	}
	if *Verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

// session is the state of a single command invocation.
type session struct {
	cfg     *config.Config
	tracker *dca.Tracker
	source  dca.PriceSource
}

// openSession loads the configuration and the tracker.
func openSession() (*session, error) {
	cfg, err := Config()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.LogLevel)

	source, err := priceSource(cfg)
	if err != nil {
		return nil, err
	}
	store, err := cfg.OpenStore()
	if err != nil {
		return nil, fmt.Errorf("cannot open %s store: %w", cfg.Store, err)
	}
	return &session{
		cfg:     cfg,
		tracker: dca.OpenTracker(dca.NewPersister(store)),
		source:  source,
	}, nil
}

// priceSource is the -price flag if set, CoinGecko otherwise.
func priceSource(cfg *config.Config) (dca.PriceSource, error) {
	if *priceFlag == "" {
		return dca.NewCoinGecko(nil, cfg.PriceURL), nil
	}
	p, err := dca.ParseDollars(*priceFlag)
	if err != nil || !p.IsPositive() {
		return nil, fmt.Errorf("invalid -price %q: want a positive number", *priceFlag)
	}
	return dca.FixedPrice(p), nil
}

// refresh updates the tracker with the current price.
func (s *session) refresh(ctx context.Context) dca.Money {
	return s.tracker.Refresh(ctx, s.source)
}

func (s *session) Close() {
	if err := s.tracker.Close(); err != nil {
		logger.Get().Errorw("cannot close storage", "error", err)
	}
}

// open is the common prologue of the commands using the tracker.
func open() (*session, subcommands.ExitStatus) {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	return s, subcommands.ExitSuccess
}

// printMarkdown renders markdown on a terminal, and prints it as is otherwise.
func printMarkdown(md string) {
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		fmt.Fprint(out, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprint(out, md)
		return
	}
	rendered, err := r.Render(md)
	if err != nil {
		fmt.Fprint(out, md)
		return
	}
	fmt.Fprint(out, rendered)
}
