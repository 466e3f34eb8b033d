package resolver

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/mailprobe/mailprobe/log"
)

var errNoIPv4 = errors.New("no ipv4 address")

type resolver struct {
	cfg         Config
	netResolver net.Resolver

	mu    sync.Mutex // Protects stats
	stats Stats
}

// NewResolver creates a fully formed resolver which is ready to use. Zero fields in cfg
// are replaced with the DefaultConfig values.
func NewResolver(cfg Config) *resolver {
	return &resolver{cfg: cfg.normalize()}
}

// Config returns the normalized configuration in use.
func (t *resolver) Config() Config {
	return t.cfg
}

func (t *resolver) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.stats
}

func (t *resolver) addStats(s Stats) {
	t.mu.Lock()
	t.stats.add(&s)
	t.mu.Unlock()
}

func (t *resolver) LookupIPv4(ctx context.Context, host string) (net.IP, error) {
	ctxWithTO, cancel := context.WithDeadline(ctx, time.Now().Add(t.cfg.Timeout))
	defer cancel()
	ips, err := t.netResolver.LookupIP(ctxWithTO, "ip4", host)
	if log.IfDebug() {
		LogIP(host, ips, "", err)
	}

	var ip net.IP
	for _, candidate := range ips {
		if ip = candidate.To4(); ip != nil {
			break
		}
	}
	if err == nil && ip == nil {
		err = errNoIPv4
	}
	if err != nil {
		t.addStats(Stats{Lookups: 1, LookupFailures: 1})
		return nil, err
	}
	t.addStats(Stats{Lookups: 1})

	return ip, nil
}
