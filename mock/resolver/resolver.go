package resolver

import (
	"context"
	"errors"
	"net"
	"sync"

	"github.com/miekg/dns"

	"github.com/mailprobe/mailprobe/dnsutil"
	"github.com/mailprobe/mailprobe/log"
	"github.com/mailprobe/mailprobe/resolver"
)

// mockResolver implements resolver.Resolver by converting lookups to file names and
// loading responses from those files. The conventions are:
//
//	Query:      $dir/query/$Type/$qname
//	LookupIPv4: $dir/lookup/A/$host
//
// where names are canonical without the trailing dot. A missing file or any rcode other
// than NOERROR with answers of the requested type means absence.
//
// Every call is recorded so tests can check which names were asked for and in what order.
type mockResolver struct {
	dir string

	mu      sync.Mutex
	queries []string
	stats   resolver.Stats
}

// NewResolver creates a mock resolver which uses the supplied directory as the location
// of mock files.
func NewResolver(dir string) *mockResolver {
	return &mockResolver{dir: dir}
}

// Queries returns every Query and LookupIPv4 made so far in the form "TYPE name".
func (t *mockResolver) Queries() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]string{}, t.queries...)
}

func (t *mockResolver) record(qType, name string, s resolver.Stats) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.queries = append(t.queries, qType+" "+name)
	t.stats.Queries += s.Queries
	t.stats.Attempts += s.Attempts
	t.stats.Answered += s.Answered
	t.stats.Absent += s.Absent
	t.stats.Lookups += s.Lookups
	t.stats.LookupFailures += s.LookupFailures
}

func (t *mockResolver) Stats() resolver.Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.stats
}

// Query makes a single attempt as the file system is a tad more stable than the DNS.
func (t *mockResolver) Query(ctx context.Context, name string, qType uint16) (resolver.RecordSet, bool) {
	name = dnsutil.ChompCanonicalName(name)
	typeName := dnsutil.TypeToString(qType)
	msg, fname := t.loadFile("query", typeName, name)
	question := dns.Question{Name: dns.Fqdn(name), Qtype: qType, Qclass: dns.ClassINET}

	var rrs resolver.RecordSet
	if msg.MsgHdr.Rcode == dns.RcodeSuccess {
		for _, rr := range msg.Answer {
			if rr.Header().Rrtype == qType {
				rrs = append(rrs, rr)
			}
		}
	}

	var err error
	if len(rrs) == 0 {
		err = errors.New(dnsutil.RcodeToString(msg.MsgHdr.Rcode) + " " + fname)
	}
	if log.IfDebug() {
		resolver.LogAttempt(question, 1, 1, rrs, err)
	}

	if err != nil {
		t.record(typeName, name, resolver.Stats{Queries: 1, Attempts: 1, Absent: 1})
		return nil, false
	}
	t.record(typeName, name, resolver.Stats{Queries: 1, Attempts: 1, Answered: 1})

	return rrs, true
}

func (t *mockResolver) LookupIPv4(ctx context.Context, host string) (net.IP, error) {
	host = dnsutil.ChompCanonicalName(host)
	msg, fname := t.loadFile("lookup", "A", host)

	var ips []net.IP
	if msg.MsgHdr.Rcode == dns.RcodeSuccess {
		for _, rr := range msg.Answer {
			if rrt, ok := rr.(*dns.A); ok {
				ips = append(ips, rrt.A)
			}
		}
	}

	var err error
	if len(ips) == 0 {
		err = errors.New("no such host")
	}
	if log.IfDebug() {
		resolver.LogIP(host, ips, fname, err)
	}

	if err != nil {
		t.record("LOOKUP", host, resolver.Stats{Lookups: 1, LookupFailures: 1})
		return nil, err
	}
	t.record("LOOKUP", host, resolver.Stats{Lookups: 1})

	return ips[0].To4(), nil
}
