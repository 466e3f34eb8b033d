package resolver

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/miekg/dns"

	"github.com/mailprobe/mailprobe/log"
	"github.com/mailprobe/mailprobe/mock"
	mockDNS "github.com/mailprobe/mailprobe/mock/dns"
)

// testConfig uses short timeouts so the failure paths don't take 16 seconds each.
func testConfig(servers ...string) Config {
	return Config{
		Nameservers: servers,
		Timeout:     250 * time.Millisecond,
		Lifetime:    400 * time.Millisecond,
		Attempts:    3,
		Backoff:     20 * time.Millisecond,
	}
}

func newRR(t *testing.T, s string) dns.RR {
	t.Helper()
	rr, err := dns.NewRR(s)
	if err != nil {
		t.Fatal("Setup error", s, err)
	}

	return rr
}

func TestQueryAnswered(t *testing.T) {
	const serverAddr = "127.0.0.1:53061"
	out := &mock.IOWriter{}
	log.SetOut(out)
	log.SetLevel(log.DebugLevel)
	h := &mockDNS.ExchangeServer{}
	stop := mockDNS.Start(serverAddr, h)
	defer stop()

	mx := newRR(t, "example.net. IN MX 10 mx.example.net.")
	cname := newRR(t, "example.net. IN CNAME elsewhere.example.net.")
	h.SetResponse(&mockDNS.ExchangeResponse{Rcode: dns.RcodeSuccess, Answer: []dns.RR{cname, mx}})

	res := NewResolver(testConfig(serverAddr))
	rrs, ok := res.Query(context.Background(), "example.net", dns.TypeMX)
	if !ok {
		t.Fatal("Expected an MX answer")
	}
	if len(rrs) != 1 {
		t.Fatal("Expected one RR after CNAME removal, not", len(rrs))
	}
	if _, isMX := rrs[0].(*dns.MX); !isMX {
		t.Error("Expected an MX RR, not", rrs[0])
	}
	if h.QueryCount() != 1 {
		t.Error("Server should have seen one query, not", h.QueryCount())
	}
	qs := h.Questions()
	if len(qs) != 1 || qs[0].Name != "example.net." || qs[0].Qtype != dns.TypeMX {
		t.Error("Query not fully qualified or wrong type", qs)
	}

	st := res.Stats()
	if st.Queries != 1 || st.Attempts != 1 || st.Answered != 1 || st.Absent != 0 {
		t.Error("Stats wrong", st.String())
	}

	got := out.String()
	for _, exp := range []string{
		"Dbg:miekg Q:udp:" + serverAddr + " q=IN/MX example.net.",
		"Dbg:res:Q IN/MX example.net. try 1/3 IN/MX 3600 10 mx.example.net.",
	} {
		if !strings.Contains(got, exp) {
			t.Error("Log does not contain", exp)
		}
	}
	t.Log(got) // Only written if errors
}

func TestQueryRetryBound(t *testing.T) {
	const serverAddr = "127.0.0.1:53062"
	log.SetOut(&mock.IOWriter{})
	log.SetLevel(log.SilentLevel)
	h := &mockDNS.ExchangeServer{}
	stop := mockDNS.Start(serverAddr, h)
	defer stop()

	cfg := testConfig(serverAddr)
	res := NewResolver(cfg)

	testCases := []struct {
		name string
		resp *mockDNS.ExchangeResponse
	}{
		{"timeout", &mockDNS.ExchangeResponse{Ignore: true}},
		{"servfail", &mockDNS.ExchangeResponse{Rcode: dns.RcodeServerFailure}},
		{"nxdomain", &mockDNS.ExchangeResponse{Rcode: dns.RcodeNameError}},
		{"refused", &mockDNS.ExchangeResponse{Rcode: dns.RcodeRefused}},
		{"nodata", &mockDNS.ExchangeResponse{Rcode: dns.RcodeSuccess}},
	}

	for ix, tc := range testCases {
		h.SetResponse(tc.resp)
		start := time.Now()
		rrs, ok := res.Query(context.Background(), "nowhere.example.net", dns.TypeTXT)
		elapsed := time.Since(start)
		if ok || rrs != nil {
			t.Error(ix, tc.name, "Expected absence, got", rrs)
		}
		if h.QueryCount() != 3 {
			t.Error(ix, tc.name, "Expected exactly 3 attempts, server saw", h.QueryCount())
		}
		if elapsed < 2*cfg.Backoff {
			t.Error(ix, tc.name, "Backoff not applied between attempts", elapsed)
		}
	}

	st := res.Stats()
	if st.Queries != len(testCases) || st.Attempts != 3*len(testCases) ||
		st.Absent != len(testCases) || st.Answered != 0 {
		t.Error("Stats wrong", st.String())
	}
}

func TestQueryTimeoutDuration(t *testing.T) {
	const serverAddr = "127.0.0.1:53063"
	log.SetOut(&mock.IOWriter{})
	h := &mockDNS.ExchangeServer{}
	stop := mockDNS.Start(serverAddr, h)
	defer stop()
	h.SetResponse(&mockDNS.ExchangeResponse{Ignore: true})

	cfg := testConfig(serverAddr)
	res := NewResolver(cfg)
	start := time.Now()
	_, ok := res.Query(context.Background(), "example.net", dns.TypeA)
	elapsed := time.Since(start)
	if ok {
		t.Fatal("Silent server produced an answer")
	}
	minimum := 3*cfg.Timeout + 2*cfg.Backoff
	maximum := 3*(cfg.Lifetime+cfg.Backoff) + time.Second // Generous for slow CI
	if elapsed < minimum || elapsed > maximum {
		t.Error("Query took", elapsed, "expected between", minimum, "and", maximum)
	}
}

func TestQueryRecovers(t *testing.T) {
	const serverAddr = "127.0.0.1:53064"
	log.SetOut(&mock.IOWriter{})
	h := &mockDNS.ExchangeServer{}
	stop := mockDNS.Start(serverAddr, h)
	defer stop()

	txt := newRR(t, `example.net. IN TXT "v=spf1 -all"`)
	h.SetResponse(&mockDNS.ExchangeResponse{Rcode: dns.RcodeServerFailure},
		&mockDNS.ExchangeResponse{Rcode: dns.RcodeSuccess, Answer: []dns.RR{txt}})

	res := NewResolver(testConfig(serverAddr))
	rrs, ok := res.Query(context.Background(), "example.net.", dns.TypeTXT)
	if !ok || len(rrs) != 1 {
		t.Fatal("Second attempt should have answered", rrs)
	}
	if h.QueryCount() != 2 {
		t.Error("Expected two attempts, server saw", h.QueryCount())
	}
	st := res.Stats()
	if st.Attempts != 2 || st.Answered != 1 {
		t.Error("Stats wrong", st.String())
	}
}

func TestQueryTCPFallback(t *testing.T) {
	const serverAddr = "127.0.0.1:53065"
	out := &mock.IOWriter{}
	log.SetOut(out)
	log.SetLevel(log.DebugLevel)
	h := &mockDNS.ExchangeServer{}
	stop := mockDNS.Start(serverAddr, h)
	defer stop()

	txt := newRR(t, `example.net. IN TXT "v=spf1 include:_spf.example.com ~all"`)
	h.SetResponse(&mockDNS.ExchangeResponse{Rcode: dns.RcodeSuccess, Truncated: true},
		&mockDNS.ExchangeResponse{Rcode: dns.RcodeSuccess, Answer: []dns.RR{txt}})

	res := NewResolver(testConfig(serverAddr))
	rrs, ok := res.Query(context.Background(), "example.net", dns.TypeTXT)
	if !ok || len(rrs) != 1 {
		t.Fatal("TCP retry should have answered", rrs)
	}
	if h.QueryCount() != 2 {
		t.Error("Expected one UDP and one TCP query, server saw", h.QueryCount())
	}
	st := res.Stats()
	if st.Truncated != 1 || st.Exchanges != 2 || st.Attempts != 1 {
		t.Error("Stats wrong", st.String())
	}

	got := out.String()
	for _, exp := range []string{
		"qr+tc+ra NOERROR Q=1-TXT Ans=0", // UDP Response with truncate flag
		"Q:tcp",
		"NOERROR Q=1-TXT Ans=1-TXT",
	} {
		if !strings.Contains(got, exp) {
			t.Error("TCP Log does not contain", exp)
		}
	}
	t.Log(got)
}

func TestQueryNextNameserver(t *testing.T) {
	const badAddr = "127.0.0.1:53066"
	const goodAddr = "127.0.0.1:53067"
	log.SetOut(&mock.IOWriter{})
	log.SetLevel(log.SilentLevel)
	bad := &mockDNS.ExchangeServer{}
	good := &mockDNS.ExchangeServer{}
	stopBad := mockDNS.Start(badAddr, bad)
	defer stopBad()
	stopGood := mockDNS.Start(goodAddr, good)
	defer stopGood()

	bad.SetResponse(&mockDNS.ExchangeResponse{Rcode: dns.RcodeServerFailure})
	a := newRR(t, "4.3.2.1.zen.spamhaus.org. IN A 127.0.0.2")
	good.SetResponse(&mockDNS.ExchangeResponse{Rcode: dns.RcodeSuccess, Answer: []dns.RR{a}})

	res := NewResolver(testConfig(badAddr, goodAddr))
	_, ok := res.Query(context.Background(), "4.3.2.1.zen.spamhaus.org", dns.TypeA)
	if !ok {
		t.Fatal("Second nameserver should have answered")
	}
	if bad.QueryCount() != 1 || good.QueryCount() != 1 {
		t.Error("Expected one query each, got", bad.QueryCount(), good.QueryCount())
	}

	// NXDOMAIN is definitive so the second server should not be asked

	bad.SetResponse(&mockDNS.ExchangeResponse{Rcode: dns.RcodeNameError})
	good.SetResponse(&mockDNS.ExchangeResponse{Rcode: dns.RcodeSuccess, Answer: []dns.RR{a}})
	_, ok = res.Query(context.Background(), "4.3.2.1.zen.spamhaus.org", dns.TypeA)
	if ok {
		t.Error("NXDOMAIN from first server should mean absence")
	}
	if bad.QueryCount() != 3 || good.QueryCount() != 0 {
		t.Error("NXDOMAIN moved to next server", bad.QueryCount(), good.QueryCount())
	}
}

func TestSingleExchangeBadQuestion(t *testing.T) {
	res := NewResolver(testConfig("127.0.0.1"))
	q := new(dns.Msg) // No questions
	_, err := res.singleExchange(context.Background(), "udp", q, "127.0.0.1:53")
	if err == nil || !strings.Contains(err.Error(), "expect one") {
		t.Error("Expected an 'expect one' error, got", err)
	}
}
