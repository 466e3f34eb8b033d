package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mailprobe/mailprobe/log"
)

func reportError(severity string, err error, messages ...string) {
	msg := severity
	if len(messages) > 0 {
		msg += ": " + strings.Join(messages, " ")
	}
	if err != nil {
		msg += ": " + err.Error()
	}
	fmt.Fprintln(log.Out(), msg)
}

func fatal(err error, messages ...string) {
	reportError("Fatal", err, messages...)
	os.Exit(1)
}

func warning(err error, messages ...string) {
	reportError("Warning", err, messages...)
}

//////////////////////////////////////////////////////////////////////

func main() {
	mp := newMailProbe(nil, nil)
	switch mp.parseOptions(os.Args) {
	case parseStop:
		return
	case parseFailed:
		os.Exit(1)
	case parseContinue:
	}

	// Transfer logging options to the log package

	err := mp.setLogLevel()
	if err != nil {
		fatal(err)
	}

	// Validate everything that is likely a typo or usage error
	err = mp.validateCommandLineOptions()
	if err != nil {
		fatal(err)
	}

	// Audits are not cancelled once started. Each query has its own bounded budget.
	code, err := mp.run(context.Background())
	if err != nil {
		fatal(err)
	}
	os.Exit(code)
}
