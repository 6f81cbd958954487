package cli

import (
	"fmt"
	"text/tabwriter"
	"text/template"
)

var templateFuncs = template.FuncMap{
	"date": func(v any) string {
		switch t := v.(type) {
		case interface{ Format(string) string }:
			return t.Format("2006-01-02 15:04")
		default:
			return fmt.Sprint(v)
		}
	},
	"pending": func(dirty bool) string {
		if dirty {
			return "pending"
		}
		return "synced"
	},
}

const clientListTemplate = `ID	NAME	STATUS	SYNC
{{- range .}}
{{.ID}}	{{.FullName}}	{{.Status}}	{{pending .Dirty}}
{{- end}}
`

const sessionListTemplate = `ID	CLIENT	SCHEDULED	TYPE	MIN	STATUS	SYNC
{{- range .}}
{{.ID}}	{{.ClientID}}	{{date .ScheduledAt}}	{{.Type}}	{{.DurationMinutes}}	{{.Status}}	{{pending .Dirty}}
{{- end}}
`

const noteListTemplate = `ID	CLIENT	SESSION	RISK	STATUS	SYNC
{{- range .}}
{{.ID}}	{{.ClientID}}	{{with .SessionID}}{{.}}{{else}}-{{end}}	{{.RiskLevel}}	{{.Status}}	{{pending .Dirty}}
{{- end}}
`

const outcomeTemplate = `
{{- if .Skipped}}A sync cycle is already running, nothing to do.
{{else}}Phase:              {{.Phase}}
Pushed to server:   {{.Pushed}}
Pulled from server: {{.Pulled}}
Inserted locally:   {{.Inserted}}
Updated locally:    {{.Updated}}
{{- if .Conflicts}}
Conflicts:          {{.Conflicts}} ({{.ConflictsLocalWon}} kept local)
{{- end}}
Pending changes:    {{.PendingChanges}}
Duration:           {{.Duration}}
{{- range .ErrorRecords}}
  ✗ {{.Op}} {{.Kind}}{{with .RecordID}} {{.}}{{end}}: {{.Message}}
{{- end}}
{{end}}`

const statusTemplate = `Sync running:    {{if .Running}}yes{{else}}no{{end}}
Pending changes: {{.PendingChanges}}
{{- with .LastSyncAt}}
Last sync:       {{date .}}
{{- else}}
Last sync:       never
{{- end}}
{{- with .LastPhase}}
Last phase:      {{.}}
{{- end}}
{{- range .Errors}}
  ✗ {{.Op}} {{.Kind}}{{with .RecordID}} {{.}}{{end}}: {{.Message}}
{{- end}}
`

var (
	clientListTmpl  = template.Must(template.New("clients").Funcs(templateFuncs).Parse(clientListTemplate))
	sessionListTmpl = template.Must(template.New("sessions").Funcs(templateFuncs).Parse(sessionListTemplate))
	noteListTmpl    = template.Must(template.New("notes").Funcs(templateFuncs).Parse(noteListTemplate))
	outcomeTmpl     = template.Must(template.New("outcome").Funcs(templateFuncs).Parse(outcomeTemplate))
	statusTmpl      = template.Must(template.New("status").Funcs(templateFuncs).Parse(statusTemplate))
)

// renderTable выводит шаблон с выравниванием колонок по табуляции
func (c *Cli) renderTable(tmpl *template.Template, data any) error {
	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	return w.Flush()
}
