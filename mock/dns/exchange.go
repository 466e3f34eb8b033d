package dns

import (
	"fmt"
	"sync"

	"github.com/miekg/dns"
)

// ExchangeResponse describes how ExchangeServer replies to one query.
type ExchangeResponse struct {
	Ignore    bool // Send nothing so the client times out
	Truncated bool // Set TC and send no RRs
	Rcode     int
	Answer    []dns.RR
	Ns        []dns.RR
	Extra     []dns.RR
}

// ExchangeServer is a dumb miekg handler which replies from a script of responses. Each
// query consumes the next response and the last response repeats forever. It never
// checks the query beyond recording its question.
type ExchangeServer struct {
	mu        sync.Mutex
	responses []*ExchangeResponse
	next      int
	questions []dns.Question
}

// SetResponse replaces the script and clears the recorded questions.
func (t *ExchangeServer) SetResponse(r ...*ExchangeResponse) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.responses = r
	t.next = 0
	t.questions = nil
}

// QueryCount returns the number of queries seen since the last SetResponse.
func (t *ExchangeServer) QueryCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.questions)
}

// Questions returns a copy of the questions seen since the last SetResponse.
func (t *ExchangeServer) Questions() []dns.Question {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]dns.Question{}, t.questions...)
}

func (t *ExchangeServer) consume(q *dns.Msg) *ExchangeResponse {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.responses) == 0 {
		panic("No responses set in mock exchange server")
	}
	if len(q.Question) > 0 {
		t.questions = append(t.questions, q.Question[0])
	}
	resp := t.responses[t.next]
	if t.next < len(t.responses)-1 {
		t.next++
	}

	return resp
}

// ServeDNS meets the interface definition for dns.Handler
func (t *ExchangeServer) ServeDNS(wtr dns.ResponseWriter, q *dns.Msg) {
	resp := t.consume(q)
	if resp.Ignore {
		return
	}

	m := new(dns.Msg)
	m.SetRcode(q, resp.Rcode)
	m.RecursionAvailable = true
	if resp.Truncated {
		m.MsgHdr.Truncated = true
	} else if resp.Rcode == dns.RcodeSuccess { // Only populate if rcode is good
		m.Answer = resp.Answer
		m.Ns = resp.Ns
		m.Extra = resp.Extra
	}

	err := wtr.WriteMsg(m)
	if err != nil {
		fmt.Println("Alert: WriteMsg error:", err)
	}
}
