package display

import (
	"fmt"
	"strings"
)

// Markdown renders the report as a markdown document for glamour.
func (v ReportView) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Load order %q\n\n", v.Order)

	r := v.Report
	if r == nil || !r.HasIssues() {
		b.WriteString("No issues found.\n")
		return b.String()
	}

	if missing := r.MissingList(); len(missing) > 0 {
		b.WriteString("## Missing mods\n\n")
		for _, e := range missing {
			fmt.Fprintf(&b, "%d. **%s** `%s`", e.Index+1, e.Name, e.UUID)
			if len(e.RequiredBy) > 0 {
				fmt.Fprintf(&b, " - required by %s", strings.Join(e.RequiredBy, ", "))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if deps := r.DependencyList(); len(deps) > 0 {
		b.WriteString("## Missing dependencies\n\n")
		for _, e := range deps {
			fmt.Fprintf(&b, "- **%s** `%s` - required by %s\n", e.Name, e.UUID, strings.Join(e.RequiredBy, ", "))
		}
		b.WriteString("\n")
	}

	if exts := r.ExtensionList(); len(exts) > 0 {
		b.WriteString("## Extension required\n\n")
		for _, e := range exts {
			fmt.Fprintf(&b, "- **%s**", e.Name)
			if e.RequiredVersion > 0 {
				fmt.Fprintf(&b, " needs extension v%d", e.RequiredVersion)
			} else {
				b.WriteString(" needs the extension")
			}
			if len(e.RequiredBy) > 0 {
				fmt.Fprintf(&b, " (dependency of %s)", strings.Join(e.RequiredBy, ", "))
			}
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
