package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mailprobe/mailprobe/probe"
)

type exportFinding struct {
	Check    string   `json:"check" yaml:"check"`
	Severity string   `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
	Detail   []string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// document is the JSON and YAML form of an audit. Field names match the AuditResult tags
// and the derived values follow them. Absent optionals are empty strings and empty
// lists so consumers never see null.
type document struct {
	Domain         string   `json:"domain" yaml:"domain"`
	Generated      string   `json:"generated,omitempty" yaml:"generated,omitempty"`
	MXPresent      bool     `json:"mx_present" yaml:"mx_present"`
	MXHosts        []string `json:"mx_hosts" yaml:"mx_hosts"`
	SPFPresent     bool     `json:"spf_present" yaml:"spf_present"`
	SPFRecord      string   `json:"spf_record" yaml:"spf_record"`
	DMARCPresent   bool     `json:"dmarc_present" yaml:"dmarc_present"`
	DMARCRecord    string   `json:"dmarc_record" yaml:"dmarc_record"`
	DKIMPresent    bool     `json:"dkim_present" yaml:"dkim_present"`
	DKIMSelector   string   `json:"dkim_selector" yaml:"dkim_selector"`
	ResolvedIP     string   `json:"resolved_ip" yaml:"resolved_ip"`
	Blacklisted    bool     `json:"blacklisted" yaml:"blacklisted"`
	BlocklistQuery string   `json:"blocklist_query" yaml:"blocklist_query"`
	BlocklistCodes []string `json:"blocklist_codes" yaml:"blocklist_codes"`

	Score    int             `json:"score" yaml:"score"`
	MaxScore int             `json:"max_score" yaml:"max_score"`
	Verdict  string          `json:"verdict" yaml:"verdict"`
	Findings []exportFinding `json:"findings" yaml:"findings"`
}

func newDocument(res probe.AuditResult, opts Options) *document {
	v := newView(res, opts)
	doc := &document{
		Domain:         res.Domain,
		Generated:      v.Generated,
		MXPresent:      res.MXPresent,
		MXHosts:        nonNil(res.MXHosts),
		SPFPresent:     res.SPFPresent,
		SPFRecord:      res.SPFRecord,
		DMARCPresent:   res.DMARCPresent,
		DMARCRecord:    res.DMARCRecord,
		DKIMPresent:    res.DKIMPresent,
		DKIMSelector:   res.DKIMSelector,
		ResolvedIP:     res.ResolvedIPString(),
		Blacklisted:    res.Blacklisted,
		BlocklistQuery: res.BlocklistQuery,
		BlocklistCodes: nonNil(res.BlocklistCodes),
		Score:          v.Score,
		MaxScore:       v.MaxScore,
		Verdict:        v.Verdict,
	}
	for _, s := range v.Sections {
		for _, f := range s.Findings {
			doc.Findings = append(doc.Findings,
				exportFinding{f.Check, f.Severity.String(), f.Message, f.Detail})
		}
	}

	return doc
}

func nonNil(ar []string) []string {
	if ar == nil {
		return []string{}
	}

	return ar
}

func writeJSON(w io.Writer, res probe.AuditResult, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(newDocument(res, opts))
}

func writeYAML(w io.Writer, res probe.AuditResult, opts Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(res, opts)); err != nil {
		return err
	}

	return enc.Close()
}
