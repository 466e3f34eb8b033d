package dnsutil

import (
	"strings"

	"github.com/miekg/dns"
)

// TXTStrings returns the text of every TXT RR in rrs. A TXT RR may carry its value as
// several character-strings which are concatenated without separators as rfc7208
// section 3.3 requires. Non-TXT RRs are ignored.
func TXTStrings(rrs []dns.RR) []string {
	ar := make([]string, 0, len(rrs))
	for _, rr := range rrs {
		if rrt, ok := rr.(*dns.TXT); ok {
			ar = append(ar, strings.Join(rrt.Txt, ""))
		}
	}

	return ar
}

// MXHosts returns the exchange names of every MX RR in rrs, chomped of the trailing dot.
func MXHosts(rrs []dns.RR) []string {
	ar := make([]string, 0, len(rrs))
	for _, rr := range rrs {
		if rrt, ok := rr.(*dns.MX); ok {
			ar = append(ar, ChompCanonicalName(rrt.Mx))
		}
	}

	return ar
}
