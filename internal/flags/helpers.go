package flags

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const (
	versionMajor = 1        // Major version component of the current release
	versionMinor = 0        // Minor version component of the current release
	versionPatch = 0        // Patch version component of the current release
	versionMeta  = "stable" // Version metadata to append to the version string
)

// Version holds the textual version string of the tzconv tool suite.
var Version = fmt.Sprintf("%d.%d.%d", versionMajor, versionMinor, versionPatch)

// VersionWithCommit folds the linker-stamped commit metadata into the
// version string reported by the version command and the --version flag.
func VersionWithCommit(gitCommit, gitDate string) string {
	vsn := Version + "-" + versionMeta
	if len(gitCommit) >= 8 {
		vsn += "-" + gitCommit[:8]
	}
	if (versionMeta != "stable") && (gitDate != "") {
		vsn += "-" + gitDate
	}
	return vsn
}

// NewApp creates an app with sane defaults.
func NewApp(gitCommit, gitDate, usage string) *cli.App {
	app := cli.NewApp()
	app.EnableBashCompletion = true
	app.Version = VersionWithCommit(gitCommit, gitDate)
	app.Usage = usage
	app.Copyright = "Copyright 2025 The tzsafe Authors"
	return app
}
