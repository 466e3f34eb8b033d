package report

import (
	"html/template"
	"io"

	"github.com/Masterminds/sprig/v3"

	"github.com/mailprobe/mailprobe/probe"
)

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ title .Domain }}</title>
<style>
body { font-family: sans-serif; max-width: 48em; margin: 2em auto; color: #1f2933; }
.card { border: 1px solid #d9e2ec; border-radius: 8px; padding: 1em 1.5em; margin-bottom: 1em; }
.badge { display: inline-block; min-width: 4em; font-weight: bold; }
.pass { color: #2f855a; } .info { color: #2b6cb0; } .warn { color: #b7791f; } .fail { color: #c53030; }
.detail { font-family: monospace; margin-left: 4.5em; word-break: break-all; }
.score { font-size: 1.5em; font-weight: bold; }
</style>
</head>
<body>
<h1>{{ title .Domain }}</h1>
{{- with .Generated }}
<p>Generated: <time datetime="{{ . }}">{{ . }}</time></p>
{{- end }}
{{- range .Sections }}
<div class="card">
<h2>{{ .Title }}</h2>
{{- range .Findings }}
<div class="finding" id="{{ .Check }}">
<span class="badge {{ .Severity.String | lower }}">{{ .Severity.String | upper }}</span> {{ .Message }}
{{- range .Detail }}
<div class="detail">{{ . }}</div>
{{- end }}
</div>
{{- end }}
</div>
{{- end }}
<p class="score {{ ternary "pass" "warn" .Good }}">Deliverability Score: {{ .Score }}/{{ .MaxScore }}</p>
<p class="{{ ternary "pass" "warn" .Good }}">{{ .Verdict }}</p>
</body>
</html>
`

func newHTMLTemplate() (*template.Template, error) {
	funcs := sprig.HtmlFuncMap()
	funcs["title"] = title

	return template.New("html").Funcs(funcs).Parse(htmlTemplate)
}

func writeHTML(w io.Writer, res probe.AuditResult, opts Options) error {
	tmpl, err := newHTMLTemplate()
	if err != nil {
		return err
	}

	return tmpl.Execute(w, newView(res, opts))
}
