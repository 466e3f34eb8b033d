package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/miekg/dns"

	"github.com/mailprobe/mailprobe/dnsutil"
	"github.com/mailprobe/mailprobe/log"
)

// These never leave the package. They only exist to make debug logs meaningful.
var (
	errNXDomain  = errors.New("NXDOMAIN")
	errNoAnswer  = errors.New("no answer of requested type")
	errServer    = errors.New("server error")
	errNoServers = errors.New("no nameservers")
)

func (t *resolver) Query(ctx context.Context, name string, qType uint16) (RecordSet, bool) {
	question := dns.Question{Name: dns.Fqdn(name), Qtype: qType, Qclass: dns.ClassINET}
	t.addStats(Stats{Queries: 1})

	for try := 1; try <= t.cfg.Attempts; try++ {
		if try > 1 {
			sleep(ctx, t.cfg.Backoff)
		}
		t.addStats(Stats{Attempts: 1})
		rrs, err := t.attempt(ctx, question)
		if log.IfDebug() {
			LogAttempt(question, try, t.cfg.Attempts, rrs, err)
		}
		if err == nil {
			t.addStats(Stats{Answered: 1})
			return rrs, true
		}
	}
	t.addStats(Stats{Absent: 1})

	return nil, false
}

// sleep pauses for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// attempt visits each nameserver in order until one gives a definitive reply. Network
// errors and server failures move on to the next nameserver. NXDOMAIN and NODATA are
// definitive and end the attempt immediately. The whole attempt is bounded by Lifetime.
func (t *resolver) attempt(ctx context.Context, question dns.Question) (RecordSet, error) {
	ctxWithTO, cancel := context.WithDeadline(ctx, time.Now().Add(t.cfg.Lifetime))
	defer cancel()

	query := new(dns.Msg)
	query.Id = dns.Id()
	query.RecursionDesired = true
	query.SetEdns0(dnsutil.MaxUDPSize, false)
	query.Question = append(query.Question, question)

	err := errNoServers
	for _, server := range t.cfg.Nameservers {
		var r *dns.Msg
		r, err = t.fullExchange(ctxWithTO, query, server)
		if err != nil {
			if ctxWithTO.Err() != nil { // Lifetime exhausted, don't bother with the rest
				break
			}
			continue
		}

		switch r.MsgHdr.Rcode {
		case dns.RcodeSuccess:
			rrs := answersOfType(r, question.Qtype)
			if len(rrs) == 0 {
				return nil, errNoAnswer
			}
			return rrs, nil
		case dns.RcodeNameError:
			return nil, errNXDomain
		}
		err = fmt.Errorf("%w %s from %s", errServer, dnsutil.RcodeToString(r.MsgHdr.Rcode), server)
	}

	return nil, err
}

// answersOfType returns the Answer RRs matching qType. CNAMEs which a recursive server
// includes ahead of the target RRs are dropped.
func answersOfType(r *dns.Msg, qType uint16) RecordSet {
	var rrs RecordSet
	for _, rr := range r.Answer {
		if rr.Header().Rrtype == qType {
			rrs = append(rrs, rr)
		}
	}

	return rrs
}

// fullExchange does a UDP exchange with server and repeats it over TCP if the reply is
// truncated.
func (t *resolver) fullExchange(ctx context.Context, q *dns.Msg, server string) (*dns.Msg, error) {
	r, err := t.singleExchange(ctx, dnsutil.UDPNetwork, q, server)
	if err != nil {
		return nil, err
	}

	if r.MsgHdr.Rcode == dns.RcodeSuccess && r.MsgHdr.Truncated {
		t.addStats(Stats{Truncated: 1})
		return t.singleExchange(ctx, dnsutil.TCPNetwork, q, server)
	}

	return r, nil
}

// singleExchange is a shim for miekg ExchangeContext which makes exactly one exchange
// attempt with server over net. No retries, no fallback.
func (t *resolver) singleExchange(ctx context.Context, net string, q *dns.Msg,
	server string) (r *dns.Msg, err error) {
	if len(q.Question) != 1 {
		err = fmt.Errorf("singleExchange Message contains %d Question(s), expect one",
			len(q.Question))
		return
	}

	question := q.Question[0]
	client := &dns.Client{Net: net, Timeout: t.cfg.Timeout, UDPSize: dnsutil.MaxUDPSize}
	t.addStats(Stats{Exchanges: 1})

	if log.IfDebug() {
		LogExchangeQ(net, server, question)
	}

	r, _, err = client.ExchangeContext(ctx, q, server)

	if log.IfDebug() {
		LogExchangeA(server, question, r, err)
	}

	return
}
