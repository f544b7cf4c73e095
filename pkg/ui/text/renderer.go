// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/modorder/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any display view as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	var b strings.Builder

	switch v := result.(type) {
	case display.CatalogView:
		if len(v.Mods) == 0 {
			b.WriteString("No mods in the catalog\n")
		}
		for _, m := range v.Mods {
			writeMod(&b, m)
		}
	case display.OrderView:
		fmt.Fprintf(&b, "%s (%s)\n", v.Name, v.Status)
		if len(v.Entries) == 0 {
			b.WriteString("The load order is empty\n")
		}
		for _, e := range v.Entries {
			fmt.Fprintf(&b, "%3d. %-9s %s %s\n", e.Position+1, e.Status, e.Name, e.UUID)
			if e.Note != "" {
				fmt.Fprintf(&b, "        %s\n", e.Note)
			}
		}
	case display.ReportView:
		if v.Report == nil || !v.Report.HasIssues() {
			fmt.Fprintf(&b, "%s: no issues found\n", v.Order)
		} else {
			b.WriteString(v.Report.Summary())
		}
	case display.ExportView:
		fmt.Fprintf(&b, "Exported %d mods from %s", len(v.Mods), v.Order)
		if v.Path != "" {
			fmt.Fprintf(&b, " to %s", v.Path)
		}
		b.WriteString("\n")
		if len(v.AutoAdded) > 0 {
			fmt.Fprintf(&b, "Added dependencies: %s\n", strings.Join(v.AutoAdded, ", "))
		}
		if len(v.Skipped) > 0 {
			fmt.Fprintf(&b, "Skipped unknown mods: %s\n", strings.Join(v.Skipped, ", "))
		}
	case display.OrderListView:
		if len(v.Orders) == 0 {
			b.WriteString("No saved orders\n")
		}
		for _, name := range v.Orders {
			marker := " "
			if name == v.Active {
				marker = "*"
			}
			fmt.Fprintf(&b, "%s %s\n", marker, name)
		}
	default:
		fmt.Fprintf(&b, "%+v\n", result)
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

func writeMod(b *strings.Builder, m display.ModView) {
	fmt.Fprintf(b, "%s %s", m.Name, m.UUID)
	if m.Version != "" {
		fmt.Fprintf(b, " v%s", m.Version)
	}
	if m.Project {
		b.WriteString(" [project]")
	}
	if m.Builtin {
		b.WriteString(" [builtin]")
	}
	b.WriteString("\n")
	if len(m.MissingDependencies) > 0 {
		fmt.Fprintf(b, "    missing: %s\n", strings.Join(m.MissingDependencies, ", "))
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
