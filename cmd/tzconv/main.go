package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/inconshreveable/log15"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/tzsafe/localtime/internal/flags"
	"github.com/urfave/cli/v2"
)

// Git SHA1 commit hash of the release (set via linker flags)
var gitCommit = ""
var gitDate = ""

var app *cli.App

func init() {
	app = flags.NewApp(gitCommit, gitDate, "a calendar-time conversion tool")
	app.Flags = []cli.Flag{verbosityFlag}
	app.Before = setupLogging
	app.Commands = []*cli.Command{
		commandDecompose,
		commandEpoch,
		commandEnv,
		commandStress,
		versionCommand,
	}
}

// Commonly used command line flags.
var (
	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output JSON instead of human-readable format",
	}
	verbosityFlag = &cli.IntFlag{
		Name:     "verbosity",
		Usage:    "logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug",
		Value:    3,
		Category: flags.LoggingCategory,
	}
)

// setupLogging routes the root logger to stderr at the requested level,
// with terminal colors when stderr is an interactive terminal.
func setupLogging(ctx *cli.Context) error {
	output := io.Writer(os.Stderr)
	format := log.LogfmtFormat()
	if isatty.IsTerminal(os.Stderr.Fd()) && os.Getenv("TERM") != "dumb" {
		output = colorable.NewColorableStderr()
		format = log.TerminalFormat()
	}
	lvl := log.Lvl(ctx.Int(verbosityFlag.Name))
	if lvl > log.LvlDebug {
		lvl = log.LvlDebug
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(output, format)))
	return nil
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
