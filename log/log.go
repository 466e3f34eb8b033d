package log

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type logLevel int

const (
	SilentLevel logLevel = iota
	MajorLevel
	MinorLevel
	DebugLevel
)

var (
	majorPrefix = ""
	minorPrefix = "  "
	debugPrefix = "   Dbg:"

	out   io.Writer
	level logLevel
)

func init() {
	out = os.Stderr // Stdout belongs to the report
	level = MajorLevel
}

func (t logLevel) String() string {
	switch t {
	case MajorLevel:
		return "Major"
	case MinorLevel:
		return "Minor"
	case DebugLevel:
		return "Debug"
	}

	return "Silent"
}

// ParseLevel converts a level name as returned by String() back into a level. Matching is
// case-insensitive.
func ParseLevel(s string) (logLevel, error) {
	for l := SilentLevel; l <= DebugLevel; l++ {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}

	return SilentLevel, fmt.Errorf("Unknown log level '%s'", s)
}

// SetOut changes the output of logging to the supplied io.Writer. The default is
// os.Stderr. The supplied io.Writer must never be nil.
func SetOut(w io.Writer) {
	if w == nil {
		panic("log.SetOut() called with a nil io.Writer")
	}
	out = w
}

// Out returns the current io.Writer. It is never nil.
func Out() io.Writer {
	return out
}

// SetLevel sets the current logging level.
func SetLevel(l logLevel) {
	level = l
}

func Level() logLevel {
	return level
}

// IfMajor returns true if Major logging is written to the output stream. The If*
// functions let callers skip building expensive log arguments.
func IfMajor() bool {
	return level >= MajorLevel
}

func IfMinor() bool {
	return level >= MinorLevel
}

func IfDebug() bool {
	return level >= DebugLevel
}

// Majorf is a fmt.Printf-like interface which only writes if the level is >= Major.
func Majorf(format string, a ...interface{}) (n int, err error) {
	if level >= MajorLevel {
		return prefixAndPrintLines(fmt.Sprintf(format, a...), majorPrefix)
	}

	return 0, nil
}

// Major is a fmt.Print-like interface which only writes if the level is >= Major. As it
// uses fmt.Sprint, spaces are only added between operands when neither is a string.
func Major(a ...interface{}) (n int, err error) {
	if level >= MajorLevel {
		return prefixAndPrintLines(fmt.Sprint(a...), majorPrefix)
	}

	return 0, nil
}

func Minorf(format string, a ...interface{}) (n int, err error) {
	if level >= MinorLevel {
		return prefixAndPrintLines(fmt.Sprintf(format, a...), minorPrefix)
	}

	return 0, nil
}

func Minor(a ...interface{}) (n int, err error) {
	if level >= MinorLevel {
		return prefixAndPrintLines(fmt.Sprint(a...), minorPrefix)
	}

	return 0, nil
}

func Debugf(format string, a ...interface{}) (n int, err error) {
	if level >= DebugLevel {
		return prefixAndPrintLines(fmt.Sprintf(format, a...), debugPrefix)
	}

	return 0, nil
}

func Debug(a ...interface{}) (n int, err error) {
	if level >= DebugLevel {
		return prefixAndPrintLines(fmt.Sprint(a...), debugPrefix)
	}

	return 0, nil
}

// prefixAndPrintLines writes each line of lines to out with prefix prepended. Trailing
// empty lines are dropped.
func prefixAndPrintLines(lines, prefix string) (int, error) {
	if !strings.Contains(lines, "\n") { // The common case
		return fmt.Fprint(out, prefix, lines, "\n")
	}

	ar := strings.Split(lines, "\n")
	for len(ar) > 0 && len(ar[len(ar)-1]) == 0 {
		ar = ar[:len(ar)-1]
	}

	return fmt.Fprint(out, prefix, strings.Join(ar, "\n"+prefix), "\n")
}
