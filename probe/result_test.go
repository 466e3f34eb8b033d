package probe

import (
	"net"
	"testing"
)

func TestScoreAllCombinations(t *testing.T) {
	for bits := 0; bits < 32; bits++ {
		res := AuditResult{
			MXPresent:    bits&1 != 0,
			SPFPresent:   bits&2 != 0,
			DMARCPresent: bits&4 != 0,
			DKIMPresent:  bits&8 != 0,
			Blacklisted:  bits&16 != 0,
		}
		expect := 0
		for _, b := range []bool{res.MXPresent, res.SPFPresent, res.DMARCPresent,
			res.DKIMPresent, !res.Blacklisted} {
			if b {
				expect++
			}
		}
		expect *= 20
		got := res.Score()
		if got != expect {
			t.Error(bits, "Score mismatch. Got", got, "expected", expect)
		}
		if got%PointsPerCheck != 0 || got < 0 || got > MaxScore {
			t.Error(bits, "Score out of range", got)
		}
	}
}

func TestScoreDefaults(t *testing.T) {
	var res AuditResult
	if res.Score() != 20 {
		t.Error("Zero value should only score for not being blacklisted, not", res.Score())
	}
	res.Blacklisted = true
	if res.Score() != 0 {
		t.Error("Expected zero score, not", res.Score())
	}
}

func TestResolvedIPString(t *testing.T) {
	var res AuditResult
	if s := res.ResolvedIPString(); s != "" {
		t.Error("nil IP should be empty, not", s)
	}
	res.ResolvedIP = net.ParseIP("192.0.2.1")
	if s := res.ResolvedIPString(); s != "192.0.2.1" {
		t.Error("Wrong IP string", s)
	}
}
