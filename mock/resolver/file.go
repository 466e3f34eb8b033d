package resolver

import (
	"bufio"
	"os"
	"path"
	"strings"

	"github.com/miekg/dns"

	"github.com/mailprobe/mailprobe/log"
)

// loadFile parses a mock response file. If it doesn't exist the response is REFUSED. If
// it exists but holds no RRs the response is NXDOMAIN. Otherwise each line is of the
// form:
//
// A:RR in dns.NewRR format, placed in the Answer section
// RCODE:miekg rcode string such as SERVFAIL - must be uppercase
// ;; Comment
//
// Blank lines are ignored and there are no spaces around the ":" separator.
//
// Colons are not friendly to zip files so they are replaced with "_" in file names.
func (t *mockResolver) loadFile(elem ...string) (r dns.Msg, fname string) {
	fname = path.Join(append([]string{t.dir}, elem...)...)
	fname = strings.ReplaceAll(fname, ":", "_")
	log.Debug("mock:Resolver:Open:", fname)
	file, err := os.Open(fname)
	if err != nil { // Assume no exist
		r.MsgHdr.Rcode = dns.RcodeRefused
		return
	}
	defer file.Close()

	rcode := -1 // Means not set
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, ";;") {
			continue
		}
		ar := strings.SplitN(line, ":", 2)
		if len(ar) != 2 { // Malformed is a setup error
			panic("Malformed mock file " + fname + ": " + line)
		}

		switch ar[0] {
		case "RCODE":
			code, ok := dns.StringToRcode[ar[1]]
			if !ok {
				panic("Unknown RCODE in " + fname + ": " + ar[1])
			}
			rcode = code
		case "A":
			rr, err := dns.NewRR(ar[1])
			if err != nil {
				panic(err) // Parse failure is a setup error
			}
			r.Answer = append(r.Answer, rr)
		default:
			panic("Bad section in mock file " + fname + ": " + ar[0])
		}
	}

	if rcode == -1 {
		rcode = dns.RcodeSuccess
		if len(r.Answer) == 0 {
			rcode = dns.RcodeNameError
		}
	}
	r.MsgHdr.Rcode = rcode

	return
}
