package main

import (
	"fmt"
	"runtime/debug"

	"github.com/mailprobe/mailprobe/log"
	"github.com/mailprobe/mailprobe/pregen"
	"github.com/mailprobe/mailprobe/report"
)

const (
	programName = "mailprobe"

	defaultProjectURL = "HTTPS://github.com/mailprobe/mailprobe"

	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"

	exitFailUnder = 2 // Score fell below --fail-under
)

// config holds the command line settings. The unexported fields below the flags are
// derived by validateCommandLineOptions and should not be set directly.
type config struct {
	projectURL string

	logMajorFlag bool
	logMinorFlag bool
	logDebugFlag bool
	logLevelName string // Overrides the --log-* flags when set

	domain     string // Only positional argument
	selector   string // Custom DKIM selector tried first
	formatName string
	output     string // Report file. Empty means stdout
	colorMode  string
	failUnder  int

	format report.Format
	color  bool
}

func newConfig() *config {
	t := &config{projectURL: defaultProjectURL}
	info, ok := debug.ReadBuildInfo()
	if ok && len(info.Main.Path) > 0 {
		t.projectURL = info.Main.Path // Override with embedded if present
	}

	return t
}

func (t *config) printVersion() {
	fmt.Fprintf(log.Out(), "Program:     %s %s (%s)\n",
		programName, pregen.Version, pregen.ReleaseDate)
	fmt.Fprintf(log.Out(), "Project:     %s\n", t.projectURL)
}
