package dnsutil

const (
	TCPNetwork = "tcp" // Case matters to miekg so keep these in one place
	UDPNetwork = "udp"

	DefaultService = "domain" // Appended to naked nameserver addresses

	MaxUDPSize uint16 = 1232 // Generally suggested as universally safe in edns0

	DMARCPrefix  = "_dmarc."      // Prepended to the domain for the DMARC policy
	DKIMInfix    = "._domainkey." // Sits between the selector and the domain
	SPFVersion   = "v=spf1"       // Marks a TXT record as an SPF policy
	DMARCVersion = "v=DMARC1"
)
