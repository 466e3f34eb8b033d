package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/miekg/dns"
	"golang.org/x/net/idna"

	"github.com/mailprobe/mailprobe/dnsutil"
	"github.com/mailprobe/mailprobe/probe"
	"github.com/mailprobe/mailprobe/report"
)

var errNoDomain = errors.New("Please enter a domain")

// Check everything that could likely be a typo or usage error. Mostly check in order
// presented by the flag package.
func (t *mailProbe) validateCommandLineOptions() error {
	if t.cfg.failUnder < 0 || t.cfg.failUnder > probe.MaxScore {
		return fmt.Errorf("--fail-under must be between 0 and %d", probe.MaxScore)
	}

	var err error
	t.cfg.format, err = report.ParseFormat(t.cfg.formatName)
	if err != nil {
		return fmt.Errorf("--format: %w", err)
	}

	if len(t.cfg.output) > 0 {
		if fi, err := os.Stat(t.cfg.output); err == nil && fi.IsDir() {
			return fmt.Errorf("--output %s is a directory", t.cfg.output)
		}
	}

	switch strings.ToLower(t.cfg.colorMode) {
	case colorAlways:
		t.cfg.color = true
	case colorNever:
		t.cfg.color = false
	case colorAuto:
		t.cfg.color = len(t.cfg.output) == 0 && isTerminal(t.stdout)
	default:
		return fmt.Errorf("--color must be one of %s, %s or %s, not '%s'",
			colorAuto, colorAlways, colorNever, t.cfg.colorMode)
	}

	if len(t.cfg.selector) > 0 {
		t.cfg.selector = strings.ToLower(strings.TrimSpace(t.cfg.selector))
		if _, ok := dns.IsDomainName(t.cfg.selector); !ok {
			return fmt.Errorf("Invalid DKIM selector: --selector %s", t.cfg.selector)
		}
	}

	t.cfg.domain, err = normalizeDomain(t.cfg.domain)

	return err
}

// normalizeDomain trims, lowercases and converts an IDN to its A-label form. Input which
// idna rejects is returned as supplied, less the trailing dot, with a warning. Lookups
// of such names fail and the audit reports defaults.
func normalizeDomain(domain string) (string, error) {
	domain = dnsutil.ChompCanonicalName(strings.TrimSpace(domain))
	if len(domain) == 0 {
		return "", errNoDomain
	}

	ascii, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		warning(err, "Domain", domain, "is not a valid hostname")
		return domain, nil
	}

	return ascii, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
