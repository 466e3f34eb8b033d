package resolver

import (
	"net"
	"strings"

	"github.com/miekg/dns"

	"github.com/mailprobe/mailprobe/dnsutil"
	"github.com/mailprobe/mailprobe/log"
)

// LogIP logs results from LookupIPv4. Exported for the mock resolver. Caller should test
// for log.IfDebug() prior to calling.
func LogIP(host string, ips []net.IP, note string, err error) {
	var s [5]string
	s[0] = "res:IP"
	s[1] = host
	if err != nil {
		s[3] = dnsutil.ShortenLookupError(err).Error()
	} else {
		var ar []string
		for _, ip := range ips {
			ar = append(ar, ip.String())
		}
		s[2] = strings.Join(ar, ",")
	}
	s[4] = note
	log.Debug(strings.Join(s[:], "#"))
}

// LogExchangeQ logs the question given to miekg.Exchange(). Exported for the mock
// resolver. Caller should test for log.IfDebug() prior to calling.
func LogExchangeQ(net, server string, q dns.Question) {
	log.Debugf("miekg Q:%s:%s q=%s", net, server, dnsutil.PrettyQuestion(q))
}

// LogExchangeA logs the answer returned by miekg.Exchange(). See above.
func LogExchangeA(server string, question dns.Question, r *dns.Msg, err error) {
	if err == nil && r != nil {
		log.Debug("miekg A:", dnsutil.PrettyMsg1(r))
		return
	}
	msg := "no response"
	if err != nil {
		msg = dnsutil.ShortenLookupError(err).Error()
	}
	log.Debugf("miekg E:%s/%s/%s %s",
		server, dnsutil.ChompCanonicalName(question.Name),
		dnsutil.TypeToString(question.Qtype), msg)
}

// LogAttempt logs the outcome of one Query attempt. Caller should test for log.IfDebug()
// prior to calling.
func LogAttempt(question dns.Question, try, attempts int, rrs RecordSet, err error) {
	if err != nil {
		log.Debugf("res:Q %s try %d/%d %s", dnsutil.PrettyQuestion(question),
			try, attempts, err.Error())
		return
	}
	log.Debugf("res:Q %s try %d/%d %s", dnsutil.PrettyQuestion(question),
		try, attempts, dnsutil.PrettyRRSet(rrs, false))
}
