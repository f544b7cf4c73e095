package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Status is the validation state of one load order entry.
type Status string

const (
	StatusOK        Status = "ok"        // Resolved in the catalog, dependencies met
	StatusMissing   Status = "missing"   // Not in the catalog
	StatusDepends   Status = "depends"   // Resolved, but a dependency is missing
	StatusExtension Status = "extension" // Needs the runtime extension
	StatusBuiltin   Status = "builtin"   // Provided by the game or ignored
)

// StatusStyle returns the pterm style used for a status label
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusOK:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusMissing:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case StatusDepends:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	case StatusExtension:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusBuiltin:
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// EntryLine is one row of a rendered load order.
type EntryLine struct {
	Position int
	Name     string
	UUID     string
	Version  string
	Status   Status
	Note     string
	Project  bool
}

// RenderEntryLine renders a load order row with its status label
func RenderEntryLine(e EntryLine) string {
	label := StatusStyle(e.Status).Sprint(fmt.Sprintf("%-9s", e.Status))

	name := e.Name
	if e.Project {
		name += " " + ProjectStyle.Render("[project]")
	}

	line := fmt.Sprintf("%3d. %s %s", e.Position+1, label, name)
	if e.Version != "" {
		line += " " + VersionStyle.Render("v"+e.Version)
	}
	line += " " + UUIDStyle.Render(e.UUID)
	if e.Note != "" {
		line += "\n" + Indent(MutedStyle.Render(e.Note), 4)
	}
	return line
}

// RenderOrder renders a titled list of entry lines
func RenderOrder(title string, lines []EntryLine) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(title) + "\n")
	if len(lines) == 0 {
		b.WriteString(MutedStyle.Render("The load order is empty"))
		return b.String()
	}
	for _, l := range lines {
		b.WriteString(RenderEntryLine(l) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// AggregateStatus folds entry statuses into the order's overall state
func AggregateStatus(lines []EntryLine) Status {
	worst := StatusOK
	for _, l := range lines {
		switch l.Status {
		case StatusMissing, StatusDepends:
			return StatusMissing
		case StatusExtension:
			worst = StatusExtension
		}
	}
	return worst
}
