package dnsutil

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

// The Pretty* functions return compact renditions of miekg structures for debug
// logging. The standard String() output follows dig and is far too verbose for a
// one-line-per-exchange log.

// PrettyMsg1 returns a compact single-line summary of the complete message.
func PrettyMsg1(m *dns.Msg) string {
	h := m.MsgHdr
	flags := []string{}
	if h.Response {
		flags = append(flags, "qr")
	}
	if h.Authoritative {
		flags = append(flags, "aa")
	}
	if h.Truncated {
		flags = append(flags, "tc")
	}
	if h.RecursionAvailable {
		flags = append(flags, "ra")
	}

	return fmt.Sprintf("%d f=%s %s Q=%d-%s Ans=%d-%s Ns=%d Extra=%d",
		h.Id, strings.Join(flags, "+"), RcodeToString(h.Rcode),
		len(m.Question), prettyQTypes(m.Question),
		len(m.Answer), prettyRRTypes(m.Answer),
		len(m.Ns), len(m.Extra))
}

func prettyQTypes(qs []dns.Question) string {
	ar := make([]string, 0, len(qs))
	for _, q := range qs {
		ar = append(ar, TypeToString(q.Qtype))
	}

	return strings.Join(ar, ",")
}

func prettyRRTypes(rrs []dns.RR) string {
	ar := make([]string, 0, len(rrs))
	for _, rr := range rrs {
		ar = append(ar, TypeToString(rr.Header().Rrtype))
	}

	return strings.Join(ar, ",")
}

// PrettyQuestion returns a compact representation of the dns.Question
func PrettyQuestion(q dns.Question) string {
	return fmt.Sprintf("%s/%s %s",
		ClassToString(dns.Class(q.Qclass)),
		TypeToString(q.Qtype),
		q.Name)
}

// PrettyRR returns a compact representation of a single RR. The types a deliverability
// audit looks at get a short form, anything else falls back to miekg.
func PrettyRR(rr dns.RR, includeName bool) (s string) {
	h := rr.Header()
	if includeName {
		s = h.Name + " "
	}
	s += fmt.Sprintf("%s/%s %d ", ClassToString(dns.Class(h.Class)), TypeToString(h.Rrtype), h.Ttl)

	switch rrt := rr.(type) {
	case *dns.A:
		return s + rrt.A.String()
	case *dns.AAAA:
		return s + rrt.AAAA.String()
	case *dns.MX:
		return s + fmt.Sprintf("%d %s", rrt.Preference, rrt.Mx)
	case *dns.TXT:
		return s + `"` + strings.Join(rrt.Txt, "") + `"`
	case *dns.CNAME:
		return s + rrt.Target
	}

	return rr.String()
}

// PrettyRRSet returns a compact representation of the slice of RRs separated by ", ".
func PrettyRRSet(rrs []dns.RR, includeName bool) string {
	ar := make([]string, 0, len(rrs))
	for _, rr := range rrs {
		ar = append(ar, PrettyRR(rr, includeName))
	}

	return strings.Join(ar, ", ")
}
