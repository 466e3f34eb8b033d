/*
Package resolver is the DNS client used by the deliverability probe. It wraps
github.com/miekg/dns exchanges against a fixed set of recursive nameservers with a bounded
number of attempts, a per-exchange timeout, a per-attempt lifetime and a fixed backoff
between attempts. Forward hostname resolution goes through the standard net.Resolver
instead, as it is a plain "what address does this name have" question and is not retried.

Query never returns an error. A record set is either returned or it is not, and the caller
cannot tell NXDOMAIN from an empty answer from a run of timeouts. This is deliberate: every
one of those means "feature absent" to a deliverability audit.

The Resolver interface exists so the probe can be tested against a mock.
*/
package resolver
