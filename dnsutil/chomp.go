package dnsutil

import (
	"github.com/miekg/dns"
)

// ChompCanonicalName makes a name canonical but loses the trailing dot. Domains are
// shown to users and used as mock file names without the dot.
func ChompCanonicalName(n string) string {
	n = dns.CanonicalName(n)
	if len(n) > 0 && n[len(n)-1] == '.' {
		n = n[:len(n)-1]
	}

	return n
}

// DMARCName returns the name holding the DMARC policy for domain.
func DMARCName(domain string) string {
	return DMARCPrefix + domain
}

// DKIMName returns the name holding the DKIM key for selector in domain.
func DKIMName(selector, domain string) string {
	return selector + DKIMInfix + domain
}
