package log

import (
	"testing"

	"github.com/mailprobe/mailprobe/mock"
)

func TestLevels(t *testing.T) {
	var w mock.IOWriter
	SetOut(&w)
	if Out() != &w {
		t.Fatal("SetOut or Out failed")
	}

	SetLevel(SilentLevel)
	if Level() != SilentLevel {
		t.Error("Set Silent failed")
	}
	if IfMajor() || IfMinor() || IfDebug() {
		t.Error("Silent should not enable any level")
	}

	Major("Should not log")
	Minor("Should not log")
	Debug("Should not log")
	Majorf("Should not log")
	Minorf("Should not log")
	Debugf("Should not log")
	if w.Len() > 0 {
		t.Error("Silent still logged", w.String())
	}

	w.Reset()
	SetLevel(MajorLevel)
	Major("a")
	Minor("b")
	Debug("c")
	Majorf("d")
	Minorf("e")
	Debugf("f")
	exp := "a\nd\n"
	if w.String() != exp {
		t.Error("Major Level not working. Got:", w.String(), "Exp:", exp)
	}

	w.Reset()
	SetLevel(MinorLevel)
	Major("a")
	Minor("b")
	Debug("c")
	Majorf("d")
	Minorf("e")
	Debugf("f")
	exp = "a\n" + minorPrefix + "b\n" + "d\n" + minorPrefix + "e\n"
	if w.String() != exp {
		t.Error("Minor Level not working. Got:", w.String(), "Exp:", exp)
	}

	w.Reset()
	SetLevel(DebugLevel)
	Debugf("%d", 7)
	exp = debugPrefix + "7\n"
	if w.String() != exp {
		t.Error("Debug Level not working. Got:", w.String(), "Exp:", exp)
	}
}

func TestLevelStrings(t *testing.T) {
	testCases := []struct {
		level logLevel
		name  string
	}{
		{SilentLevel, "Silent"},
		{MajorLevel, "Major"},
		{MinorLevel, "Minor"},
		{DebugLevel, "Debug"},
	}

	for ix, tc := range testCases {
		if tc.level.String() != tc.name {
			t.Error(ix, "Wrong string. Want", tc.name, "got", tc.level.String())
		}
		l, err := ParseLevel(tc.name)
		if err != nil {
			t.Error(ix, "Unexpected ParseLevel error", err)
			continue
		}
		if l != tc.level {
			t.Error(ix, "ParseLevel mismatch. Want", tc.level, "got", l)
		}
	}

	l, err := ParseLevel("debug") // Case does not matter
	if err != nil || l != DebugLevel {
		t.Error("Lowercase ParseLevel failed", l, err)
	}

	_, err = ParseLevel("verbose")
	if err == nil {
		t.Error("Expected an error for an unknown level")
	}
}

func TestFormat(t *testing.T) {
	var w mock.IOWriter
	SetOut(&w)
	SetLevel(MinorLevel)
	f := "%" // Trick vet so it doesn't complain about %d with Major
	f += "d a "
	Major(f, 5)
	Majorf("%d b", 5)
	exp := "%d a 5\n5 b\n"
	if exp != w.String() {
		t.Error("F and non-F not working", w.String(), exp)
	}
}

func TestMultiLine(t *testing.T) {
	var w mock.IOWriter
	SetOut(&w)
	SetLevel(MinorLevel)

	testCases := []struct{ in, exp string }{
		{"a", "a\n"},
		{"a\n", "a\n"},
		{"a\nb", "a\nb\n"},
		{"a\nb\n\n\n", "a\nb\n"},
	}
	for ix, tc := range testCases {
		w.Reset()
		Major(tc.in)
		if w.String() != tc.exp {
			t.Error(ix, "Multiline mismatch. Want", tc.exp, "got", w.String())
		}
	}

	w.Reset()
	Minor("a\nb\n\n")
	exp := minorPrefix + "a\n" + minorPrefix + "b\n"
	if exp != w.String() {
		t.Error("Prefix not added to every line", exp, w.String())
	}
}
