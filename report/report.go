package report

import (
	"fmt"
	"io"
	"time"

	"github.com/mailprobe/mailprobe/probe"
)

// Options adjust rendering. The zero value produces uncoloured output with no
// generation time.
type Options struct {
	Color     bool      // ANSI colour for TextFormat, ignored by other formats
	Generated time.Time // Included in the report when not zero
}

type section struct {
	Title    string
	Findings []Finding
}

// view is what the text and HTML templates see.
type view struct {
	Domain    string
	Generated string
	Sections  []section
	Score     int
	MaxScore  int
	Verdict   string
	Good      bool
}

func newView(res probe.AuditResult, opts Options) *view {
	v := &view{
		Domain:   res.Domain,
		Score:    res.Score(),
		MaxScore: probe.MaxScore,
	}
	v.Verdict = Verdict(v.Score)
	v.Good = v.Score >= GoodScore
	if !opts.Generated.IsZero() {
		v.Generated = opts.Generated.UTC().Format(time.RFC3339)
	}
	v.Sections = []section{
		{authenticationSection, authenticationFindings(res)},
		{reputationSection, reputationFindings(res)},
	}

	return v
}

// Write renders res to w in format f.
func Write(w io.Writer, res probe.AuditResult, f Format, opts Options) error {
	switch f {
	case TextFormat:
		return writeText(w, res, opts)
	case HTMLFormat:
		return writeHTML(w, res, opts)
	case JSONFormat:
		return writeJSON(w, res, opts)
	case YAMLFormat:
		return writeYAML(w, res, opts)
	}

	return fmt.Errorf("report: unsupported format %s", f)
}
