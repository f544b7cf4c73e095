// Package validate checks a load order against a library and reports what
// is missing.
//
// Validation never fails: data-quality problems end up in the Report.
package validate

import (
	"github.com/arthur-debert/modorder/pkg/catalog"
	"github.com/arthur-debert/modorder/pkg/loadorder"
	"github.com/arthur-debert/modorder/pkg/logging"
	"github.com/arthur-debert/modorder/pkg/mod"
)

// Extension describes the installed state of the optional runtime extension.
type Extension struct {
	Installed bool
	// Version is the installed version; zero means unknown and satisfies
	// any requirement.
	Version int
}

// Satisfies reports whether the installed extension meets r's requirement.
func (x Extension) Satisfies(r *mod.Record) bool {
	if !r.Extension.Required {
		return true
	}
	if !x.Installed {
		return false
	}
	if x.Version == 0 || r.Extension.Version == 0 {
		return true
	}
	return x.Version >= r.Extension.Version
}

// Options configures Validate.
type Options struct {
	Extension Extension
}

// Validate walks the order once, left to right, collecting order entries
// absent from the catalog and dependencies nothing provides. Dependencies
// that resolve in the catalog without being active are followed so their own
// requirements are checked too. When that pass is clean, a second pass
// collects unmet extension requirements of active mods and their
// dependencies.
func Validate(order *loadorder.LoadOrder, lib *catalog.Library, opts Options) *Report {
	logger := logging.GetLogger("validate")
	done := logging.LogOperationStart(logger, "validate")
	defer done()

	v := &validator{
		lib:     lib,
		report:  newReport(),
		checked: make(mod.Set),
	}

	for i, e := range order.Entries() {
		rec, ok := lib.Mods.Get(e.UUID)
		if !ok {
			if !lib.IsIgnored(e.UUID) {
				v.markMissing(e, i)
			}
			continue
		}
		v.checkDependencies(rec)
	}

	if !v.report.HasBlockingIssues() {
		v.checkExtension(order, opts.Extension)
	}

	logger.Debug().
		Str("order", order.Name).
		Int("entries", order.Len()).
		Int("missing", len(v.report.Missing)).
		Int("dependencyMissing", len(v.report.DependencyMissing)).
		Int("extensionRequired", len(v.report.ExtensionRequired)).
		Msg("Validated load order")

	return v.report
}

type validator struct {
	lib     *catalog.Library
	report  *Report
	checked mod.Set
}

// markMissing records a direct entry absent from the catalog, promoting it
// out of DependencyMissing if an earlier mod already asked for it.
func (v *validator) markMissing(e *loadorder.Entry, index int) {
	missing := &MissingEntry{UUID: e.UUID, Name: e.Name, Index: index}
	if dep, ok := v.report.DependencyMissing[e.UUID]; ok {
		missing.RequiredBy = dep.RequiredBy
		if missing.Name == "" {
			missing.Name = dep.Name
		}
		delete(v.report.DependencyMissing, e.UUID)
	}
	if missing.Name == "" {
		missing.Name = string(e.UUID)
	}
	v.report.Missing[e.UUID] = missing
}

func (v *validator) checkDependencies(rec *mod.Record) {
	if v.checked.Has(rec.UUID) {
		return
	}
	v.checked.Add(rec.UUID)

	requester := rec.DisplayName()
	for _, d := range rec.Dependencies {
		if depRec, ok := v.lib.Mods.Get(d.UUID); ok {
			v.checkDependencies(depRec)
			continue
		}
		if v.lib.Resolves(d.UUID) {
			continue
		}
		if missing, ok := v.report.Missing[d.UUID]; ok {
			missing.RequiredBy = appendUnique(missing.RequiredBy, requester)
			continue
		}
		entry, ok := v.report.DependencyMissing[d.UUID]
		if !ok {
			name := d.Name
			if name == "" {
				name = string(d.UUID)
			}
			entry = &DependencyEntry{UUID: d.UUID, Name: name}
			v.report.DependencyMissing[d.UUID] = entry
		}
		entry.RequiredBy = appendUnique(entry.RequiredBy, requester)
	}
}

func (v *validator) checkExtension(order *loadorder.LoadOrder, ext Extension) {
	for _, e := range order.Entries() {
		rec, ok := v.lib.Mods.Get(e.UUID)
		if !ok {
			continue
		}
		if !ext.Satisfies(rec) {
			v.extensionEntry(rec)
		}
		for _, d := range rec.Dependencies {
			depRec, ok := v.lib.Resolve(d.UUID)
			if !ok || ext.Satisfies(depRec) {
				continue
			}
			entry := v.extensionEntry(depRec)
			entry.RequiredBy = appendUnique(entry.RequiredBy, rec.DisplayName())
		}
	}
}

func (v *validator) extensionEntry(rec *mod.Record) *ExtensionEntry {
	entry, ok := v.report.ExtensionRequired[rec.UUID]
	if !ok {
		entry = &ExtensionEntry{
			UUID:            rec.UUID,
			Name:            rec.DisplayName(),
			RequiredVersion: rec.Extension.Version,
		}
		v.report.ExtensionRequired[rec.UUID] = entry
	}
	return entry
}
