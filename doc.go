// This file exists so that "go doc github.com/mailprobe/mailprobe" displays something
// useful.

/*
Package mailprobe is an email deliverability checker. Given a domain it checks the DNS
records which receiving mail servers consult (MX, SPF, DMARC and DKIM) and whether the
domain's sending address is listed in the Spamhaus ZEN blocklist, then scores the
result out of 100.

The command is in cmd/mailprobe. The probe package runs an audit and the report package
renders it as text, HTML, JSON or YAML.
*/
package mailprobe
