package probe

import (
	"net"
)

const (
	// PointsPerCheck is awarded for each passing check. There are five checks so a
	// perfect score is 100.
	PointsPerCheck = 20
	MaxScore       = PointsPerCheck * 5
)

// AuditResult is the outcome of one Audit. It is returned by value and the slices are
// owned by the result so callers can treat it as immutable.
//
// The score is derived from the five check fields by Score() rather than stored so it
// can never disagree with them.
type AuditResult struct {
	Domain       string `json:"domain" yaml:"domain"`
	MXPresent    bool   `json:"mx_present" yaml:"mx_present"`
	SPFPresent   bool   `json:"spf_present" yaml:"spf_present"`
	DMARCPresent bool   `json:"dmarc_present" yaml:"dmarc_present"`
	DKIMPresent  bool   `json:"dkim_present" yaml:"dkim_present"`
	DKIMSelector string `json:"dkim_selector" yaml:"dkim_selector"` // Empty if !DKIMPresent
	ResolvedIP   net.IP `json:"resolved_ip" yaml:"resolved_ip"`     // nil if forward resolution failed
	Blacklisted  bool   `json:"blacklisted" yaml:"blacklisted"`

	// Details which do not contribute to the score

	MXHosts        []string `json:"mx_hosts" yaml:"mx_hosts"`
	SPFRecord      string   `json:"spf_record" yaml:"spf_record"`
	DMARCRecord    string   `json:"dmarc_record" yaml:"dmarc_record"`
	BlocklistQuery string   `json:"blocklist_query" yaml:"blocklist_query"`
	BlocklistCodes []string `json:"blocklist_codes" yaml:"blocklist_codes"` // A RRs returned by the blocklist
}

// Score returns PointsPerCheck for each of MX, SPF, DMARC and DKIM present plus the IP
// not being listed. The result is always a multiple of PointsPerCheck in [0, MaxScore].
func (t AuditResult) Score() int {
	score := 0
	for _, b := range []bool{t.MXPresent, t.SPFPresent, t.DMARCPresent, t.DKIMPresent, !t.Blacklisted} {
		if b {
			score += PointsPerCheck
		}
	}

	return score
}

// ResolvedIPString returns the dotted ipv4 address or the empty string if the domain did
// not resolve. net.IP.String() returns "<nil>" which is not what a report wants.
func (t AuditResult) ResolvedIPString() string {
	if t.ResolvedIP == nil {
		return ""
	}

	return t.ResolvedIP.String()
}
