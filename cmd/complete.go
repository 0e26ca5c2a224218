package cmd

import (
	"flag"

	"github.com/etnz/dca/config"
	"github.com/etnz/dca/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// predictors of flag values, by command then flag name. Other flags take anything.
var predictors = map[string]map[string]complete.Predictor{
	"": {
		"store":    predict.Set{config.StoreFile, config.StoreSQLite, config.StoreMemory},
		"data-dir": predict.Dirs("*"),
	},
	"records": {"p": predict.Set{"day", "week", "month", "quarter", "year"}},
	"export":  {"format": predict.Set{"json", "csv", "yaml"}},
}

// Completion returns the shell completion of the dca command line.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors("", flag.CommandLine),
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(c.Name(), fs)}
		switch c.Name() {
		case "topic":
			sub.Args = predict.Set(append(docs.AllTopics(), "*"))
		case "import":
			sub.Args = predict.Files("*.csv")
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

// flagPredictors predicts the flags defined in 'fs' for the command 'name'.
func flagPredictors(name string, fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := predictors[name][f.Name]; ok {
			flags[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
