// Command dca tracks recurring bitcoin purchases.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/dca/cmd"
	"github.com/etnz/dca/logger"
	"github.com/google/subcommands"
)

func main() {
	// answers shell completion requests, and exits, when invoked by the shell.
	cmd.Completion().Complete("dca")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	if name := flag.Arg(0); name != "" && !registered(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	status := commander.Execute(context.Background())
	logger.Sync()
	os.Exit(int(status))
}

func registered(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range cmd.Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}
