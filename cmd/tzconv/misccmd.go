package main

import (
	"fmt"
	"runtime"

	"github.com/tzsafe/localtime/internal/flags"
	"github.com/tzsafe/localtime/localtime"
	"github.com/urfave/cli/v2"
)

var versionCommand = &cli.Command{
	Action:    version,
	Name:      "version",
	Usage:     "Print version numbers",
	ArgsUsage: " ",
	Description: `
The output of this command is supposed to be machine-readable.
`,
}

func version(ctx *cli.Context) error {
	fmt.Println("tzconv")
	fmt.Println("Version:", flags.Version)
	if gitCommit != "" {
		fmt.Println("Git Commit:", gitCommit)
	}
	if gitDate != "" {
		fmt.Println("Git Commit Date:", gitDate)
	}
	fmt.Println("Engine:", engineName())
	fmt.Println("Architecture:", runtime.GOARCH)
	fmt.Println("Go Version:", runtime.Version())
	fmt.Println("Operating System:", runtime.GOOS)
	return nil
}

// engineName names the conversion backend compiled into this binary.
func engineName() string {
	if localtime.NativeEngine() {
		return "native (cgo)"
	}
	return "pure Go fallback"
}
