package dnsutil

import (
	"fmt"
	"net"
)

// BlocklistQName forms the DNSBL query name for an ipv4 address by reversing its octets
// and appending zone, e.g. 1.2.3.4 in zen.spamhaus.org becomes
// 4.3.2.1.zen.spamhaus.org. The result is not fully qualified.
//
// An empty string is returned if ip is not an ipv4 address as the common blocklist zones
// use a different convention for ipv6.
func BlocklistQName(ip net.IP, zone string) string {
	ip4 := ip.To4() // Also handles a nil ip
	if ip4 == nil {
		return ""
	}

	return fmt.Sprintf("%d.%d.%d.%d.%s", ip4[3], ip4[2], ip4[1], ip4[0], ChompCanonicalName(zone))
}
