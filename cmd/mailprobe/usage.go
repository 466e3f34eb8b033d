package main

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/mailprobe/mailprobe/log"
	"github.com/mailprobe/mailprobe/probe"
	"github.com/mailprobe/mailprobe/report"
)

type parseResult int // This is a ternary variable
const (
	parseStop     parseResult = iota // No error, but don't continue
	parseContinue                    // No errors and continue
	parseFailed                      // Errors, do not continue
)

// parseOptions populates the config from the command line. Duplicate options are
// rejected as pflag silently keeps the last value, which is rarely what a fumbling user
// intended. The domain is the only positional argument.
func (t *mailProbe) parseOptions(args []string) parseResult {
	var helpFlag, versionFlag bool

	name := programName
	if len(args) > 0 {
		name = args[0]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Consider '-h' for command-line usage")
	}

	fs.SetOutput(log.Out())

	// Non-config flags

	fs.BoolVarP(&helpFlag, "help", "h", false, "Print command-line usage")
	fs.BoolVarP(&versionFlag, "version", "v", false, "Print version and origin URL")

	// config flags

	fs.BoolVar(&t.cfg.logMajorFlag, "log-major", true, "Log major events to Stderr")
	fs.BoolVar(&t.cfg.logMinorFlag, "log-minor", false,
		"Log each check outcome and resolver statistics - this implies --log-major")
	fs.BoolVar(&t.cfg.logDebugFlag, "log-debug", false,
		"Log every DNS exchange - this implies --log-minor")

	fs.StringVar(&t.cfg.logLevelName, "log-level", "",
		`Set the log level by name: silent, major, minor or debug. This
overrides the other --log-* options.`)

	fs.IntVar(&t.cfg.failUnder, "fail-under", 0,
		`Exit with status 2 if the score is below this value. Zero
disables the check.`)

	fs.StringVar(&t.cfg.colorMode, "color", colorAuto,
		`Colour the text report: auto, always or never. Auto colours
only when the report is written to a terminal.`)
	fs.StringVar(&t.cfg.formatName, "format", report.TextFormat.String(),
		"Report format: "+strings.Join(report.FormatNames(), ", "))
	fs.StringVar(&t.cfg.output, "output", "",
		`Write the report to this file instead of Stdout.
`)
	fs.StringVar(&t.cfg.selector, "selector", "",
		`DKIM selector to try ahead of the built-in list:
`+strings.Join(probe.DefaultSelectors, ", ")+".")

	////////////////////////////////////////

	dupes := make(map[string]bool) // True means dupes are ok

	dupes["help"] = true    // Documentation options that never run an audit can be
	dupes["version"] = true // duplicated because the user may be fumbling around.

	err := fs.ParseAll(args[1:],
		func(f *flag.Flag, v string) error {
			if tf, ok := dupes[f.Name]; ok {
				if tf {
					return fs.Set(f.Name, v)
				}
				return fmt.Errorf("Duplicate option '--%v %v' not allowed",
					f.Name, v)
			}
			dupes[f.Name] = false
			return fs.Set(f.Name, v)
		})

	if err != nil {
		fmt.Fprintln(log.Out(), "Error:", err.Error())
		return parseFailed
	}

	// Handle all documentation options locally

	if helpFlag {
		printUsage(fs)
		fmt.Fprintln(log.Out())
		t.cfg.printVersion()
		return parseStop
	}

	if versionFlag {
		t.cfg.printVersion()
		return parseStop
	}

	switch fs.NArg() {
	case 0:
	case 1:
		t.cfg.domain = fs.Arg(0)
	default:
		fmt.Fprintf(log.Out(), "Error:Unexpected goop on command line: '%s'\n",
			strings.Join(fs.Args()[1:], " "))
		return parseFailed
	}

	return parseContinue
}

func printUsage(fs *flag.FlagSet) {
	o := log.Out()
	fmt.Fprintln(o, "NAME")
	fmt.Fprintln(o, " ", programName, "-- an email deliverability checker")
	fmt.Fprintln(o)
	fmt.Fprintln(o, "SYNOPSIS")
	fmt.Fprintln(o, "     mailprobe -h | --help | -v | --version")
	fmt.Fprintln(o, `     mailprobe [--selector name] [--format text|html|json|yaml]
               [--output path] [--color auto|always|never] [--fail-under score]
               [--log-major=true] [--log-minor] [--log-debug] [--log-level name]
               domain`)
	fmt.Fprint(o, `
DESCRIPTION
     mailprobe audits the DNS configuration which receiving mail servers use to
     judge mail from a domain. It checks for MX, SPF, DMARC and DKIM records and
     looks up the domain's ipv4 address in the Spamhaus ZEN blocklist.

     Each passing check earns 20 points for a score out of 100. A score of 80
     or more is considered a solid setup.

     DNS queries are sent to Google Public DNS with up to three attempts each, so
     a domain with no DKIM record can take a while to audit.
`)
	fmt.Fprintln(o)
	fmt.Fprintln(o, "OPTIONS")
	op := fs.Output()
	fs.SetOutput(o)
	fs.PrintDefaults()
	fs.SetOutput(op)

	fmt.Fprint(o, `
EXIT STATUS
     0 on success, 1 on usage or output errors and 2 when the score is below
     --fail-under.
`)
}
