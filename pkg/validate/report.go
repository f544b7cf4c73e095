package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/modorder/pkg/mod"
)

// MissingEntry is a load order entry that the catalog does not contain.
type MissingEntry struct {
	UUID  mod.UUID `json:"uuid"`
	Name  string   `json:"name"`
	Index int      `json:"index"`
	// RequiredBy lists active mods that also declared the entry as a
	// dependency.
	RequiredBy []string `json:"requiredBy,omitempty"`
}

// DependencyEntry is a dependency of an active mod that nothing provides.
type DependencyEntry struct {
	UUID       mod.UUID `json:"uuid"`
	Name       string   `json:"name"`
	RequiredBy []string `json:"requiredBy"`
}

// ExtensionEntry is an active mod, or a dependency of one, that needs the
// runtime extension in a form that is not installed.
type ExtensionEntry struct {
	UUID            mod.UUID `json:"uuid"`
	Name            string   `json:"name"`
	RequiredVersion int      `json:"requiredVersion,omitempty"`
	RequiredBy      []string `json:"requiredBy,omitempty"`
}

// Report is the outcome of validating a load order. A UUID never appears in
// both Missing and DependencyMissing.
type Report struct {
	Missing           map[mod.UUID]*MissingEntry    `json:"missing"`
	DependencyMissing map[mod.UUID]*DependencyEntry `json:"dependencyMissing"`
	ExtensionRequired map[mod.UUID]*ExtensionEntry  `json:"extensionRequired"`
}

func newReport() *Report {
	return &Report{
		Missing:           make(map[mod.UUID]*MissingEntry),
		DependencyMissing: make(map[mod.UUID]*DependencyEntry),
		ExtensionRequired: make(map[mod.UUID]*ExtensionEntry),
	}
}

// HasIssues reports whether any of the three maps is non-empty.
func (r *Report) HasIssues() bool {
	return len(r.Missing) > 0 || len(r.DependencyMissing) > 0 || len(r.ExtensionRequired) > 0
}

// HasBlockingIssues reports missing entries or dependencies. Extension
// requirements are warnings only.
func (r *Report) HasBlockingIssues() bool {
	return len(r.Missing) > 0 || len(r.DependencyMissing) > 0
}

// MissingList returns Missing ordered by load order position.
func (r *Report) MissingList() []*MissingEntry {
	out := make([]*MissingEntry, 0, len(r.Missing))
	for _, e := range r.Missing {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// DependencyList returns DependencyMissing ordered by name.
func (r *Report) DependencyList() []*DependencyEntry {
	out := make([]*DependencyEntry, 0, len(r.DependencyMissing))
	for _, e := range r.DependencyMissing {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].UUID < out[j].UUID
	})
	return out
}

// ExtensionList returns ExtensionRequired ordered by name.
func (r *Report) ExtensionList() []*ExtensionEntry {
	out := make([]*ExtensionEntry, 0, len(r.ExtensionRequired))
	for _, e := range r.ExtensionRequired {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].UUID < out[j].UUID
	})
	return out
}

// MissingSummary describes entries absent from the catalog, one per line.
func (r *Report) MissingSummary() string {
	var b strings.Builder
	for _, e := range r.MissingList() {
		fmt.Fprintf(&b, "%d. %s (%s)", e.Index+1, e.Name, e.UUID)
		if len(e.RequiredBy) > 0 {
			fmt.Fprintf(&b, " - required by %s", strings.Join(e.RequiredBy, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// DependencySummary describes missing dependencies, one per line.
func (r *Report) DependencySummary() string {
	var b strings.Builder
	for _, e := range r.DependencyList() {
		fmt.Fprintf(&b, "%s (%s) - required by %s\n", e.Name, e.UUID, strings.Join(e.RequiredBy, ", "))
	}
	return b.String()
}

// ExtensionSummary describes unmet extension requirements, one per line.
func (r *Report) ExtensionSummary() string {
	var b strings.Builder
	for _, e := range r.ExtensionList() {
		b.WriteString(e.Name)
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
	return b.String()
}

// Summary joins the non-empty sections under headings.
func (r *Report) Summary() string {
	var sections []string
	if s := r.MissingSummary(); s != "" {
		sections = append(sections, "Missing mods:\n"+s)
	}
	if s := r.DependencySummary(); s != "" {
		sections = append(sections, "Missing dependencies:\n"+s)
	}
	if s := r.ExtensionSummary(); s != "" {
		sections = append(sections, "Extension required:\n"+s)
	}
	return strings.Join(sections, "\n")
}

func appendUnique(list []string, name string) []string {
	for _, existing := range list {
		if existing == name {
			return list
		}
	}
	return append(list, name)
}
