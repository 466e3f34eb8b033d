/*
Package probe audits the email deliverability posture of a single domain.

An audit runs a fixed sequence of checks through a resolver.Resolver: MX, SPF, DMARC, DKIM
at a list of well-known selectors and a Spamhaus ZEN lookup of the domain's ipv4
address. Each check degrades to its absent or clean default on any lookup failure so an
audit always produces a complete AuditResult and never an error.

	p := probe.New(resolver.NewResolver(resolver.DefaultConfig()))
	res := p.Audit(context.Background(), "example.net", "")
	fmt.Println(res.Score())
*/
package probe
