package report

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/fatih/color"

	"github.com/mailprobe/mailprobe/probe"
)

const textTemplate = `{{ heading .Domain }}
{{ repeat (len (title .Domain)) "=" }}
{{- with .Generated }}
Generated: {{ . }}
{{- end }}
{{- range .Sections }}

{{ .Title | upper }}
{{- range .Findings }}
  {{ badge .Severity }} {{ .Message }}
{{- range .Detail }}
         {{ . }}
{{- end }}
{{- end }}
{{- end }}

Score:   {{ score .Score .MaxScore .Good }}
Verdict: {{ verdict .Verdict .Good }}
`

var severityColors = []color.Attribute{color.FgGreen, color.FgCyan, color.FgYellow, color.FgRed}

// palette applies colour only when enabled. Each color.Color is set explicitly so the
// global color.NoColor, which tracks whether stdout is a terminal, has no say.
type palette struct {
	enabled bool
}

func (t palette) paint(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if t.enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c.Sprint(s)
}

func (t palette) badge(s Severity) string {
	attr := color.Reset
	if int(s) >= 0 && int(s) < len(severityColors) {
		attr = severityColors[s]
	}

	return t.paint("["+strings.ToUpper(s.String())+"]", attr, color.Bold)
}

func (t palette) outcome(s string, good bool) string {
	if good {
		return t.paint(s, color.FgGreen, color.Bold)
	}

	return t.paint(s, color.FgYellow, color.Bold)
}

func title(domain string) string {
	if len(domain) == 0 {
		domain = "(no domain)"
	}

	return "Deliverability audit for " + domain
}

func newTextTemplate(p palette) (*template.Template, error) {
	funcs := sprig.TxtFuncMap()
	funcs["title"] = title
	funcs["heading"] = func(domain string) string { return p.paint(title(domain), color.Bold) }
	funcs["badge"] = p.badge
	funcs["score"] = func(score, max int, good bool) string {
		return p.outcome(fmt.Sprintf("%d/%d", score, max), good)
	}
	funcs["verdict"] = p.outcome

	return template.New("text").Funcs(funcs).Parse(textTemplate)
}

func writeText(w io.Writer, res probe.AuditResult, opts Options) error {
	tmpl, err := newTextTemplate(palette{enabled: opts.Color})
	if err != nil {
		return err
	}

	return tmpl.Execute(w, newView(res, opts))
}
