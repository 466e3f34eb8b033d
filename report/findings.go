package report

import (
	"strings"

	"github.com/mailprobe/mailprobe/dnsutil"
	"github.com/mailprobe/mailprobe/probe"
)

// Severity grades a single Finding. Higher is worse.
type Severity int

const (
	Pass Severity = iota
	Info
	Warn
	Fail
)

var severityNames = []string{"pass", "info", "warn", "fail"}

func (t Severity) String() string {
	if int(t) >= 0 && int(t) < len(severityNames) {
		return severityNames[t]
	}

	return "unknown"
}

// Finding is the outcome of one check phrased for a reader. Detail holds the supporting
// data, such as the SPF record, and may be empty.
type Finding struct {
	Check    string
	Severity Severity
	Message  string
	Detail   []string
}

const (
	authenticationSection = "Authentication"
	reputationSection     = "Reputation"

	goodVerdict = "Excellent - your setup is solid."
	badVerdict  = "Issues detected - emails may land in spam."

	// GoodScore is the lowest score which earns the good verdict.
	GoodScore = 80
)

// Verdict returns the one line summary for a score.
func Verdict(score int) string {
	if score >= GoodScore {
		return goodVerdict
	}

	return badVerdict
}

// Findings returns the authentication findings (MX, SPF, DMARC, DKIM) followed by the
// reputation findings (IP and blocklist).
func Findings(res probe.AuditResult) []Finding {
	return append(authenticationFindings(res), reputationFindings(res)...)
}

func authenticationFindings(res probe.AuditResult) []Finding {
	var ar []Finding
	if res.MXPresent {
		ar = append(ar, Finding{"mx", Pass, "MX record found", res.MXHosts})
	} else {
		ar = append(ar, Finding{"mx", Fail, "MX record missing", nil})
	}

	if res.SPFPresent {
		ar = append(ar, Finding{"spf", Pass, "SPF configured", detail(res.SPFRecord)})
	} else {
		ar = append(ar, Finding{"spf", Fail, "SPF missing", nil})
	}

	if res.DMARCPresent {
		ar = append(ar, Finding{"dmarc", Pass, "DMARC configured", detail(res.DMARCRecord)})
	} else {
		ar = append(ar, Finding{"dmarc", Warn, "DMARC not found", nil})
	}

	if res.DKIMPresent {
		ar = append(ar, Finding{"dkim", Pass, "DKIM found (" + res.DKIMSelector + ")",
			detail(dnsutil.DKIMName(res.DKIMSelector, dnsutil.ChompCanonicalName(strings.TrimSpace(res.Domain))))})
	} else {
		ar = append(ar, Finding{"dkim", Info, "DKIM not detected", nil})
	}

	return ar
}

func reputationFindings(res probe.AuditResult) []Finding {
	var ar []Finding
	if res.ResolvedIP == nil {
		ar = append(ar, Finding{"ip", Warn, "Could not resolve IP", nil})
	} else {
		ar = append(ar, Finding{"ip", Info, "Sending IP: " + res.ResolvedIPString(), nil})
	}

	switch {
	case res.Blacklisted:
		ar = append(ar, Finding{"blocklist", Fail, "IP is blacklisted",
			append(detail(res.BlocklistQuery), res.BlocklistCodes...)})
	case res.ResolvedIP != nil:
		ar = append(ar, Finding{"blocklist", Pass, "IP is clean (Spamhaus)",
			detail(res.BlocklistQuery)})
	default:
		ar = append(ar, Finding{"blocklist", Pass,
			"Blocklist not checked (no IP), counted as clean", nil})
	}

	return ar
}

func detail(s string) []string {
	if len(s) == 0 {
		return nil
	}

	return []string{s}
}
