package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dca"
	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove purchases" }
func (*rmCmd) Usage() string {
	return `dca rm <id>...

  Removes the purchases with these ids, as listed by 'dca records'.
  Prices observed on their day are kept.

`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (*rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing id")
		return subcommands.ExitUsageError
	}
	s, status := open()
	if s == nil {
		return status
	}
	defer s.Close()

	for _, id := range f.Args() {
		if s.tracker.Delete(dca.ID(id)) {
			fmt.Fprintf(out, "Removed %s\n", id)
		} else {
			fmt.Fprintf(out, "No purchase with id %s\n", id)
		}
	}
	return subcommands.ExitSuccess
}
