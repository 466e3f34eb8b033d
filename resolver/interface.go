package resolver

import (
	"context"
	"net"

	"github.com/miekg/dns"
)

// RecordSet holds the answer RRs of the requested type. A returned RecordSet is never
// empty.
type RecordSet []dns.RR

// Resolver covers every network lookup made by the probe. Implementations must be safe
// for concurrent use since separate audits may share one Resolver.
type Resolver interface {

	// Query looks up qType records for name against the configured nameservers. It
	// returns false if no records were obtained for any reason, including NXDOMAIN,
	// NODATA, SERVFAIL, timeouts and malformed names. It never returns an error.
	//
	// Query blocks for at most Attempts * (Lifetime + Backoff). The supplied context
	// is passed to each exchange.
	Query(ctx context.Context, name string, qType uint16) (RecordSet, bool)

	// LookupIPv4 resolves host to its first ipv4 address with the system resolver.
	// It makes a single attempt bounded by the configured Timeout.
	LookupIPv4(ctx context.Context, host string) (net.IP, error)

	// Stats returns a snapshot of the lookup counters.
	Stats() Stats
}
