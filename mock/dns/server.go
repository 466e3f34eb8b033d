package dns

import (
	"github.com/miekg/dns"

	"github.com/mailprobe/mailprobe/dnsutil"
)

// Start starts UDP and TCP miekg servers on addr which share handler h, and only returns
// once both are listening. The returned function shuts both down. Setup failures panic
// as they are test configuration errors.
func Start(addr string, h dns.Handler) (stop func()) {
	udp := startServer(dnsutil.UDPNetwork, addr, h)
	tcp := startServer(dnsutil.TCPNetwork, addr, h)

	return func() {
		udp.Shutdown()
		tcp.Shutdown()
	}
}

func startServer(net, addr string, h dns.Handler) *dns.Server {
	srv := &dns.Server{Net: net, Addr: addr, Handler: h}
	started := make(chan struct{})
	srv.NotifyStartedFunc = func() { close(started) }

	failed := make(chan error, 1)
	go func() {
		failed <- srv.ListenAndServe()
	}()

	select {
	case <-started:
	case err := <-failed:
		msg := "exited early"
		if err != nil {
			msg = err.Error()
		}
		panic("Setup of " + net + " server on " + addr + " failed: " + msg)
	}

	return srv
}
