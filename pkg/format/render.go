package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Output formats accepted by Render.
const (
	FormatText     = "text"
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatMarkdown = "md"
)

// Renderer writes reports in a chosen format.
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer. Color applies to text and table output.
func NewRenderer(color bool) *Renderer {
	return &Renderer{styles: NewStyles(color)}
}

// Render writes the report in the given format.
func (r *Renderer) Render(w io.Writer, rep *Report, format string) error {
	switch format {
	case FormatJSON:
		return r.renderJSON(w, rep)
	case FormatMarkdown, "markdown":
		return r.renderMarkdown(w, rep)
	case FormatTable:
		return r.renderTable(w, rep)
	case FormatText, "":
		return r.renderText(w, rep)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func (r *Renderer) renderText(w io.Writer, rep *Report) error {
	if rep.Valid {
		_, err := fmt.Fprintf(w, "%s: %s\n", rep.label(), r.styles.Success.Render("valid"))
		return err
	}

	d := rep.Diagnostic
	sev := r.styles.severityStyle(d.Severity).Render(d.Severity.String())
	_, err := fmt.Fprintf(w, "%s: %s[%s] op %d (line %d): %s\n",
		rep.label(), sev, d.CheckID, d.Index, d.Pos.Line, d.Message)
	if err != nil {
		return err
	}
	for _, rel := range d.Related {
		if _, err := fmt.Fprintf(w, "  %s op %d (line %d): %s\n",
			r.styles.Muted.Render("note:"), rel.Index, rel.Pos.Line, rel.Message); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderTable(w io.Writer, rep *Report) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Source", "Valid", "Op", "Kind", "Severity", "Message"})

	if rep.Valid {
		t.AppendRow(table.Row{rep.label(), "yes", "", "", "", ""})
	} else {
		d := rep.Diagnostic
		t.AppendRow(table.Row{
			rep.label(),
			"no",
			d.Index,
			rep.ViolationKind,
			r.styles.severityStyle(d.Severity).Render(d.Severity.String()),
			d.Message,
		})
	}

	t.Render()
	return nil
}

func (r *Renderer) renderJSON(w io.Writer, rep *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func (r *Renderer) renderMarkdown(w io.Writer, rep *Report) error {
	if rep.Valid {
		_, err := fmt.Fprintf(w, "**%s**: valid\n", rep.label())
		return err
	}

	d := rep.Diagnostic
	if _, err := fmt.Fprintf(w, "**%s**: invalid\n\n", rep.label()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "| Op | Kind | Severity | Message |"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "| --- | --- | --- | --- |"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "| %d | %s | %s | %s |\n",
		d.Index, rep.ViolationKind, d.Severity, d.Message)
	return err
}

// label returns the display name for the report's source.
func (rep *Report) label() string {
	if rep.Source != "" {
		return rep.Source
	}
	return "trace"
}
