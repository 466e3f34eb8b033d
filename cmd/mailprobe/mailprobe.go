package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mailprobe/mailprobe/log"
	"github.com/mailprobe/mailprobe/osutil"
	"github.com/mailprobe/mailprobe/pregen"
	"github.com/mailprobe/mailprobe/probe"
	"github.com/mailprobe/mailprobe/report"
	"github.com/mailprobe/mailprobe/resolver"
)

// The mailProbe container exists so that most of the "main" functionality can be
// delegated to support functions and tested without calling os.Exit.
type mailProbe struct {
	cfg *config

	resolver resolver.Resolver
	probe    *probe.Probe
	stdout   io.Writer // Report destination when --output is not set

	startTime time.Time
}

func newMailProbe(cfg *config, r resolver.Resolver) *mailProbe {
	t := &mailProbe{
		cfg:       cfg,
		resolver:  r,
		stdout:    os.Stdout,
		startTime: time.Now(),
	}
	if t.cfg == nil {
		t.cfg = newConfig()
	}
	if t.resolver == nil {
		t.resolver = resolver.NewResolver(resolver.DefaultConfig())
	}
	t.probe = probe.New(t.resolver)

	return t
}

// setLogLevel transfers the logging options to the log package. --log-level wins over
// the individual flags.
func (t *mailProbe) setLogLevel() error {
	if len(t.cfg.logLevelName) > 0 {
		l, err := log.ParseLevel(t.cfg.logLevelName)
		if err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
		log.SetLevel(l)
		return nil
	}

	log.SetLevel(log.SilentLevel)
	if t.cfg.logMajorFlag {
		log.SetLevel(log.MajorLevel)
	}
	if t.cfg.logMinorFlag {
		log.SetLevel(log.MinorLevel)
	}
	if t.cfg.logDebugFlag {
		log.SetLevel(log.DebugLevel)
	}

	return nil
}

// run audits the domain, writes the report and returns the exit status. An error is only
// returned if the report could not be written.
func (t *mailProbe) run(ctx context.Context) (int, error) {
	log.Minorf("%s %s auditing %s with Log Level: %s",
		programName, pregen.Version, t.cfg.domain, log.Level())

	done := t.watchSignals()
	res := t.probe.Audit(ctx, t.cfg.domain, t.cfg.selector)
	close(done)

	err := t.writeReport(res)
	if err != nil {
		return 1, err
	}

	st := t.resolver.Stats()
	log.Minor("Resolver: ", st.String())
	log.Minor("Elapsed: ", time.Since(t.startTime).Round(time.Millisecond))

	score := res.Score()
	if t.cfg.failUnder > 0 && score < t.cfg.failUnder {
		log.Majorf("Score %d is below --fail-under %d", score, t.cfg.failUnder)
		return exitFailUnder, nil
	}

	return 0, nil
}

// watchSignals logs a status report whenever a status signal arrives until done is
// closed. A full audit of a domain with no DKIM can take over a minute so this lets an
// impatient user see that queries are still progressing.
func (t *mailProbe) watchSignals() chan struct{} {
	done := make(chan struct{})
	sig := make(chan os.Signal, 1)
	osutil.StatusNotify(sig)
	go func() {
		defer osutil.StatusStop(sig)
		for {
			select {
			case <-done:
				return
			case s := <-sig:
				if osutil.IsSignalUSR1(s) {
					t.statusReport()
				}
			}
		}
	}()

	return done
}

func (t *mailProbe) statusReport() {
	st := t.resolver.Stats()
	log.Majorf("Status %s after %s: %s", t.cfg.domain,
		time.Since(t.startTime).Round(time.Second), st.String())
}

func (t *mailProbe) writeReport(res probe.AuditResult) error {
	opts := report.Options{Color: t.cfg.color, Generated: time.Now()}
	if len(t.cfg.output) == 0 {
		return report.Write(t.stdout, res, t.cfg.format, opts)
	}

	f, err := os.Create(t.cfg.output)
	if err != nil {
		return fmt.Errorf("--output: %w", err)
	}
	err = report.Write(f, res, t.cfg.format, opts)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("--output %s: %w", t.cfg.output, err)
	}
	log.Major("Report written to ", t.cfg.output)

	return nil
}
