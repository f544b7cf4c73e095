// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/modorder/pkg/style"
	"github.com/arthur-debert/modorder/pkg/ui/display"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using lipgloss, pterm and glamour
type Renderer struct {
	output   io.Writer
	markdown *style.MarkdownRenderer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{
		output:   w,
		markdown: style.NewMarkdownRenderer(),
	}, nil
}

// RenderResult renders any display view with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	var out string

	switch v := result.(type) {
	case display.CatalogView:
		out = renderCatalog(v)
	case display.OrderView:
		lines := make([]style.EntryLine, len(v.Entries))
		for i, e := range v.Entries {
			lines[i] = e.Line()
		}
		out = style.RenderOrder(v.Name, lines)
	case display.ReportView:
		out = r.markdown.Render(v.Markdown(), ".md")
	case display.ExportView:
		out = renderExport(v)
	case display.OrderListView:
		out = renderOrderList(v)
	default:
		out = fmt.Sprintf("%+v", result)
	}

	_, err := fmt.Fprintln(r.output, strings.TrimRight(out, "\n"))
	return err
}

func renderCatalog(v display.CatalogView) string {
	if len(v.Mods) == 0 {
		return style.MutedStyle.Render("No mods in the catalog")
	}

	var b strings.Builder
	b.WriteString(style.TitleStyle.Render("Catalog") + "\n")
	for _, m := range v.Mods {
		line := style.InfoIndicator + " " + style.Bold(m.Name)
		if m.Version != "" {
			line += " " + style.VersionStyle.Render("v"+m.Version)
		}
		if m.Project {
			line += " " + style.ProjectStyle.Render("[project]")
		}
		if m.Builtin {
			line += " " + style.BuiltinStyle.Render("[builtin]")
		}
		b.WriteString(line + "\n")
		b.WriteString(style.Indent(style.UUIDStyle.Render(m.UUID), 2) + "\n")
		if len(m.MissingDependencies) > 0 {
			b.WriteString(style.Indent(style.ErrorStyle.Render("missing: "+strings.Join(m.MissingDependencies, ", ")), 2) + "\n")
		}
	}
	return b.String()
}

func renderExport(v display.ExportView) string {
	var b strings.Builder
	msg := fmt.Sprintf("Exported %d mods from %s", len(v.Mods), style.Bold(v.Order))
	if v.Path != "" {
		msg += " to " + style.PathStyle.Render(v.Path)
	}
	b.WriteString(style.SuccessIndicator + " " + msg + "\n")
	for _, id := range v.AutoAdded {
		b.WriteString(style.Indent(style.InfoIndicator+" added dependency "+style.UUIDStyle.Render(id), 1) + "\n")
	}
	for _, id := range v.Skipped {
		b.WriteString(style.Indent(style.WarningIndicator+" skipped unknown mod "+style.UUIDStyle.Render(id), 1) + "\n")
	}
	return b.String()
}

func renderOrderList(v display.OrderListView) string {
	if len(v.Orders) == 0 {
		return style.MutedStyle.Render("No saved orders")
	}
	var b strings.Builder
	for _, name := range v.Orders {
		if name == v.Active {
			b.WriteString(style.SuccessIndicator + " " + style.Bold(name) + "\n")
		} else {
			b.WriteString("  " + name + "\n")
		}
	}
	return b.String()
}

// RenderError renders an error with styling
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, style.ErrorIndicator+" "+style.ErrorStyle.Render(err.Error()))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, pterm.Info.Sprint(msg))
	return err
}
