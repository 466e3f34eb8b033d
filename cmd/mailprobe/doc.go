/*
mailprobe audits the email deliverability posture of a domain from the command line.

It checks for MX, SPF, DMARC and DKIM records, looks up the domain's ipv4 address in the
Spamhaus ZEN blocklist, scores the result out of 100 and writes a report as text, HTML,
JSON or YAML. A typical invocation is:

	$ mailprobe example.net
	$ mailprobe --selector s1 --format html --output example.net.html example.net

Run with -h for the full list of options.
*/
package main
