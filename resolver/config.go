package resolver

import (
	"net"
	"time"

	"github.com/mailprobe/mailprobe/dnsutil"
)

const (
	defaultTimeout  = 5 * time.Second // Per exchange with a single server
	defaultLifetime = 5 * time.Second // Per attempt across all nameservers
	defaultAttempts = 3
	defaultBackoff  = 400 * time.Millisecond
)

// Config is the complete resolver configuration. It is copied by NewResolver so later
// changes by the caller have no effect. Zero values are replaced with defaults.
type Config struct {
	Nameservers []string      // host or host:port. Port defaults to the domain service
	Timeout     time.Duration // Applies to each UDP or TCP exchange
	Lifetime    time.Duration // Applies to one attempt which may visit every nameserver
	Attempts    int           // Total attempts, not retries
	Backoff     time.Duration // Sleep between a failed attempt and the next one
}

// DefaultConfig returns the configuration used by mailprobe: Google public DNS, five
// second timeouts and three attempts 400ms apart.
func DefaultConfig() Config {
	return Config{
		Nameservers: []string{"8.8.8.8", "8.8.4.4"},
		Timeout:     defaultTimeout,
		Lifetime:    defaultLifetime,
		Attempts:    defaultAttempts,
		Backoff:     defaultBackoff,
	}
}

// normalize fills in defaults and coerces every nameserver into host:port form.
func (t Config) normalize() Config {
	def := DefaultConfig()
	if len(t.Nameservers) == 0 {
		t.Nameservers = def.Nameservers
	}
	if t.Timeout <= 0 {
		t.Timeout = def.Timeout
	}
	if t.Lifetime <= 0 {
		t.Lifetime = def.Lifetime
	}
	if t.Attempts <= 0 {
		t.Attempts = def.Attempts
	}
	if t.Backoff < 0 {
		t.Backoff = 0
	}

	servers := make([]string, 0, len(t.Nameservers))
	for _, ns := range t.Nameservers {
		servers = append(servers, normalizeHostPort(ns))
	}
	t.Nameservers = servers

	return t
}

// normalizeHostPort appends the domain service to a naked address. Anything which does
// not split as host:port is treated as naked, so ipv6 addresses must be bracketed if
// they carry a port.
func normalizeHostPort(addr string) string {
	if ip := net.ParseIP(addr); ip != nil {
		return net.JoinHostPort(addr, dnsutil.DefaultService)
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return net.JoinHostPort(addr, dnsutil.DefaultService)
	}

	return addr
}
