package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/dca"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the purchases to stdout" }
func (*exportCmd) Usage() string {
	return `dca export [-format json|csv|yaml]

  Writes every purchase, in the order they were recorded, to stdout.

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "Output format: json, csv or yaml")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	format, err := dca.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, status := open()
	if s == nil {
		return status
	}
	defer s.Close()

	if err := dca.ExportRecords(out, s.tracker.Records(), format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "record purchases from csv files" }
func (*importCmd) Usage() string {
	return `dca import <file.csv>...

  Records the purchases listed in csv files with the columns "date", "amount"
  and "price". Other columns are ignored. Use "-" to read from stdin.

  Nothing is recorded if any row of a file is invalid.

`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (*importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing file")
		return subcommands.ExitUsageError
	}
	s, status := open()
	if s == nil {
		return status
	}
	defer s.Close()

	for _, name := range f.Args() {
		orders, err := readOrders(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", name, err)
			return subcommands.ExitFailure
		}
		added, err := s.tracker.Import(orders)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", name, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(out, "Imported %d purchases from %s\n", len(added), name)
	}
	return subcommands.ExitSuccess
}

// readOrders reads a csv file, stdin for "-".
func readOrders(name string) ([]dca.Order, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return dca.ImportOrders(r)
}
