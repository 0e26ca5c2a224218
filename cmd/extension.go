package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/etnz/dca/logger"
)

// Environment variables passed to extensions, with the global flags applied.
const (
	EnvStore    = "DCA_STORE"
	EnvDataDir  = "DCA_DATA_DIR"
	EnvPriceURL = "DCA_PRICE_URL"
	EnvLogLevel = "DCA_LOG_LEVEL"
	EnvPrice    = "DCA_PRICE"
)

// RunExtension attempts to find and execute an external dca-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "dca-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logger.Get().Debugw("no extension", "command", externalCmdName, "error", err)
		return false, 0
	}

	cfg, err := Config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return true, 2
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvStore+"="+cfg.Store,
		EnvDataDir+"="+cfg.DataDir,
		EnvPriceURL+"="+cfg.PriceURL,
		EnvLogLevel+"="+cfg.LogLevel,
		EnvPrice+"="+*priceFlag,
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
