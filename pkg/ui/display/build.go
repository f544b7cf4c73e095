package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/modorder/pkg/export"
	"github.com/arthur-debert/modorder/pkg/loadorder"
	"github.com/arthur-debert/modorder/pkg/mod"
	"github.com/arthur-debert/modorder/pkg/style"
	"github.com/arthur-debert/modorder/pkg/validate"
	"github.com/arthur-debert/modorder/pkg/version"
)

// Resolver answers catalog questions while building an OrderView.
type Resolver interface {
	Lookup(id mod.UUID) (*mod.Record, bool)
	IsBuiltin(id mod.UUID) bool
}

func versionString(v version.Code) string {
	if v.IsZero() {
		return ""
	}
	return v.String()
}

// NewModView converts a record.
func NewModView(r *mod.Record) ModView {
	v := ModView{
		UUID:    string(r.UUID),
		Name:    r.DisplayName(),
		Folder:  r.Folder,
		Version: versionString(r.Version),
		ModType: r.ModType,
		Project: r.IsProject,
		Builtin: r.IsBuiltin,
	}
	for _, d := range r.Dependencies {
		v.Dependencies = append(v.Dependencies, dependencyName(d))
	}
	for _, d := range r.MissingDependencies {
		v.MissingDependencies = append(v.MissingDependencies, dependencyName(d))
	}
	return v
}

func dependencyName(d mod.Dependency) string {
	if d.Name != "" {
		return d.Name
	}
	return string(d.UUID)
}

// NewCatalogView converts catalog records, keeping their order.
func NewCatalogView(records []*mod.Record) CatalogView {
	v := CatalogView{Mods: make([]ModView, 0, len(records))}
	for _, r := range records {
		v.Mods = append(v.Mods, NewModView(r))
	}
	return v
}

// NewOrderView annotates every entry of o with its state in report. A nil
// report marks every resolvable entry as ok.
func NewOrderView(o *loadorder.LoadOrder, report *validate.Report, res Resolver) OrderView {
	if report == nil {
		report = &validate.Report{}
	}

	v := OrderView{Name: o.Name, Entries: make([]OrderEntryView, 0, o.Len())}
	lines := make([]style.EntryLine, 0, o.Len())

	for i, e := range o.Entries() {
		ev := OrderEntryView{Position: i, UUID: string(e.UUID), Name: e.Name, Status: style.StatusOK}

		if m, ok := report.Missing[e.UUID]; ok {
			ev.Status = style.StatusMissing
			ev.Note = "not installed"
			if len(m.RequiredBy) > 0 {
				ev.Note += ", required by " + strings.Join(m.RequiredBy, ", ")
			}
		} else if res.IsBuiltin(e.UUID) {
			ev.Status = style.StatusBuiltin
		} else if rec, ok := res.Lookup(e.UUID); ok {
			ev.Name = rec.DisplayName()
			ev.Version = versionString(rec.Version)
			ev.Project = rec.IsProject
			annotate(&ev, rec, report)
		}

		if ev.Name == "" {
			ev.Name = ev.UUID
		}
		v.Entries = append(v.Entries, ev)
		lines = append(lines, ev.Line())
	}

	v.Status = style.AggregateStatus(lines)
	return v
}

func annotate(ev *OrderEntryView, rec *mod.Record, report *validate.Report) {
	var missing []string
	for _, d := range rec.Dependencies {
		if dep, ok := report.DependencyMissing[d.UUID]; ok {
			missing = append(missing, dep.Name)
		} else if m, ok := report.Missing[d.UUID]; ok {
			missing = append(missing, m.Name)
		}
	}
	if len(missing) > 0 {
		ev.Status = style.StatusDepends
		ev.Note = "missing dependencies: " + strings.Join(missing, ", ")
		return
	}
	if x, ok := report.ExtensionRequired[rec.UUID]; ok {
		ev.Status = style.StatusExtension
		if x.RequiredVersion > 0 {
			ev.Note = fmt.Sprintf("needs extension v%d", x.RequiredVersion)
		} else {
			ev.Note = "needs the extension"
		}
	}
}

// Line converts the entry into a styled row.
func (e OrderEntryView) Line() style.EntryLine {
	return style.EntryLine{
		Position: e.Position,
		Name:     e.Name,
		UUID:     e.UUID,
		Version:  e.Version,
		Status:   e.Status,
		Note:     e.Note,
		Project:  e.Project,
	}
}

// NewExportView summarises an export result written to path.
func NewExportView(order, path string, res export.Result) ExportView {
	v := ExportView{Order: order, Path: path, Mods: make([]ModView, 0, len(res.Records))}
	for _, r := range res.Records {
		v.Mods = append(v.Mods, NewModView(r))
	}
	for _, id := range res.AutoAdded {
		v.AutoAdded = append(v.AutoAdded, string(id))
	}
	for _, id := range res.Skipped {
		v.Skipped = append(v.Skipped, string(id))
	}
	return v
}
