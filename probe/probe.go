package probe

import (
	"context"
	"net"
	"strings"

	"github.com/miekg/dns"

	"github.com/mailprobe/mailprobe/dnsutil"
	"github.com/mailprobe/mailprobe/log"
	"github.com/mailprobe/mailprobe/resolver"
)

// BlocklistZone is the DNSBL queried with the reversed ipv4 address of the domain.
const BlocklistZone = "zen.spamhaus.org"

// DefaultSelectors are the DKIM selectors tried, in priority order, after any custom
// selector supplied to Audit.
var DefaultSelectors = []string{"google", "default", "k1", "smtp", "selector1", "selector2"}

// Spamhaus answers from 127.255.255.0/24 when it refuses a query, most commonly because
// it arrived via a public resolver. These are still counted as listings but are logged.
var blocklistRefusal = &net.IPNet{IP: net.IPv4(127, 255, 255, 0).To4(), Mask: net.CIDRMask(24, 32)}

// Probe runs audits against a shared resolver. A Probe holds no per-audit state so it is
// safe for concurrent use if the resolver is.
type Probe struct {
	resolver resolver.Resolver
}

func New(r resolver.Resolver) *Probe {
	return &Probe{resolver: r}
}

// Audit checks domain and returns the populated result. customSelector, if not empty,
// is tried ahead of DefaultSelectors. Audit never fails: a check whose lookups fail for
// any reason is reported as absent (or not blacklisted for the reputation check).
//
// An empty domain returns the default result without issuing any lookups.
func (t *Probe) Audit(ctx context.Context, domain, customSelector string) AuditResult {
	res := AuditResult{Domain: domain}
	domain = dnsutil.ChompCanonicalName(strings.TrimSpace(domain))
	if len(domain) == 0 {
		return res
	}

	t.checkMX(ctx, domain, &res)
	t.checkSPF(ctx, domain, &res)
	t.checkDMARC(ctx, domain, &res)
	t.checkDKIM(ctx, domain, customSelector, &res)
	t.checkReputation(ctx, domain, &res)

	log.Minorf("audit %s score=%d/%d", domain, res.Score(), MaxScore)

	return res
}

func (t *Probe) checkMX(ctx context.Context, domain string, res *AuditResult) {
	rrs, ok := t.resolver.Query(ctx, domain, dns.TypeMX)
	if !ok {
		log.Minor("MX absent for ", domain)
		return
	}
	res.MXPresent = true
	res.MXHosts = dnsutil.MXHosts(rrs)
	log.Minor("MX present: ", strings.Join(res.MXHosts, ","))
}

// Only the first TXT containing the SPF version tag is retained. Multiple SPF records
// are a misconfiguration (rfc7208 section 4.5) but they still count as present here.
func (t *Probe) checkSPF(ctx context.Context, domain string, res *AuditResult) {
	rrs, ok := t.resolver.Query(ctx, domain, dns.TypeTXT)
	if ok {
		for _, txt := range dnsutil.TXTStrings(rrs) {
			if strings.Contains(txt, dnsutil.SPFVersion) {
				res.SPFPresent = true
				res.SPFRecord = txt
				log.Minor("SPF present: ", txt)
				return
			}
		}
	}
	log.Minor("SPF absent for ", domain)
}

// Any TXT answer at the _dmarc name counts. The record is not checked for the
// v=DMARC1 tag.
func (t *Probe) checkDMARC(ctx context.Context, domain string, res *AuditResult) {
	qName := dnsutil.DMARCName(domain)
	rrs, ok := t.resolver.Query(ctx, qName, dns.TypeTXT)
	if !ok {
		log.Minor("DMARC absent at ", qName)
		return
	}
	res.DMARCPresent = true
	if txts := dnsutil.TXTStrings(rrs); len(txts) > 0 {
		res.DMARCRecord = txts[0]
	}
	if !strings.HasPrefix(res.DMARCRecord, dnsutil.DMARCVersion) {
		log.Minorf("DMARC at %s lacks %s tag: %s", qName, dnsutil.DMARCVersion, res.DMARCRecord)
	} else {
		log.Minor("DMARC present: ", res.DMARCRecord)
	}
}

// checkDKIM stops at the first selector with any TXT answer.
func (t *Probe) checkDKIM(ctx context.Context, domain, customSelector string, res *AuditResult) {
	for _, sel := range selectorCandidates(customSelector) {
		qName := dnsutil.DKIMName(sel, domain)
		if _, ok := t.resolver.Query(ctx, qName, dns.TypeTXT); ok {
			res.DKIMPresent = true
			res.DKIMSelector = sel
			log.Minor("DKIM present at ", qName)
			return
		}
	}
	log.Minor("DKIM not detected for ", domain)
}

// selectorCandidates returns the custom selector followed by DefaultSelectors, skipping
// any which have already been listed.
func selectorCandidates(custom string) []string {
	custom = strings.ToLower(strings.TrimSpace(custom))
	ar := make([]string, 0, len(DefaultSelectors)+1)
	if len(custom) > 0 {
		ar = append(ar, custom)
	}
	for _, sel := range DefaultSelectors {
		if sel != custom {
			ar = append(ar, sel)
		}
	}

	return ar
}

// checkReputation leaves Blacklisted false if the domain has no ipv4 address since there
// is nothing to look up.
func (t *Probe) checkReputation(ctx context.Context, domain string, res *AuditResult) {
	ip, err := t.resolver.LookupIPv4(ctx, domain)
	if err != nil {
		log.Minor("Could not resolve ", domain, ": ", dnsutil.ShortenLookupError(err))
		return
	}
	res.ResolvedIP = ip
	res.BlocklistQuery = dnsutil.BlocklistQName(ip, BlocklistZone)
	if len(res.BlocklistQuery) == 0 {
		return
	}

	rrs, ok := t.resolver.Query(ctx, res.BlocklistQuery, dns.TypeA)
	if !ok {
		log.Minor(ip, " not listed in ", BlocklistZone)
		return
	}
	res.Blacklisted = true
	for _, rr := range rrs {
		if a, ok := rr.(*dns.A); ok {
			res.BlocklistCodes = append(res.BlocklistCodes, a.A.String())
			if blocklistRefusal.Contains(a.A) {
				log.Minorf("%s refused the query with %s, treating as listed",
					BlocklistZone, a.A)
			}
		}
	}
	log.Minor(ip, " listed in ", BlocklistZone, ": ", strings.Join(res.BlocklistCodes, ","))
}
