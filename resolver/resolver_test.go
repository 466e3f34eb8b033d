package resolver

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mailprobe/mailprobe/log"
	"github.com/mailprobe/mailprobe/mock"
)

func TestConfigNormalize(t *testing.T) {
	cfg := Config{}.normalize()
	def := DefaultConfig()
	if cfg.Timeout != def.Timeout || cfg.Lifetime != def.Lifetime ||
		cfg.Attempts != def.Attempts || cfg.Backoff != 0 {
		t.Error("Zero config not defaulted", cfg)
	}
	if len(cfg.Nameservers) != 2 ||
		cfg.Nameservers[0] != "8.8.8.8:domain" || cfg.Nameservers[1] != "8.8.4.4:domain" {
		t.Error("Default nameservers wrong", cfg.Nameservers)
	}

	if def.Timeout != 5*time.Second || def.Lifetime != 5*time.Second ||
		def.Attempts != 3 || def.Backoff != 400*time.Millisecond {
		t.Error("DefaultConfig drifted", def)
	}

	testCases := []struct{ in, exp string }{
		{"192.0.2.1", "192.0.2.1:domain"},
		{"192.0.2.1:5353", "192.0.2.1:5353"},
		{"2001:db8::53", "[2001:db8::53]:domain"},
		{"[2001:db8::53]:5353", "[2001:db8::53]:5353"},
		{"ns.example.net", "ns.example.net:domain"},
	}
	for ix, tc := range testCases {
		got := normalizeHostPort(tc.in)
		if got != tc.exp {
			t.Error(ix, "normalizeHostPort want", tc.exp, "got", got)
		}
	}

	r := NewResolver(Config{Nameservers: []string{"192.0.2.1"}, Backoff: -1})
	if r.Config().Backoff != 0 || r.Config().Nameservers[0] != "192.0.2.1:domain" {
		t.Error("NewResolver did not normalize", r.Config())
	}
}

func TestLookupIPv4(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)
	log.SetLevel(log.DebugLevel)
	res := NewResolver(DefaultConfig())

	ip, err := res.LookupIPv4(context.Background(), "localhost")
	if err != nil {
		t.Fatal("localhost does not resolve?", err)
	}
	if ip.To4() == nil || !ip.IsLoopback() {
		t.Error("Expected an ipv4 loopback, not", ip)
	}

	_, err = res.LookupIPv4(context.Background(), "Bad Host Name")
	if err == nil {
		t.Error("Expected an error return with a bad host name")
	}

	st := res.Stats()
	if st.Lookups != 2 || st.LookupFailures != 1 {
		t.Error("Lookup stats wrong", st.String())
	}

	got := out.String()
	if !strings.Contains(got, "Dbg:res:IP#localhost#127.") {
		t.Error("Lookup not logged", got)
	}
}

func TestStatsString(t *testing.T) {
	var s1 Stats
	s2 := Stats{1, 2, 3, 4, 5, 6, 7, 8}
	s1.add(&s2)
	s1.add(&s2)
	got := s1.String()
	exp := "q=2 tries=4 ex=6 tc=8 ans=10 absent=12 lookups=14(16 failed)"
	if got != exp {
		t.Error("Stats.String \nExp:", exp, "\nGot:", got)
	}
}
